package ui

import (
	"net/url"
	"strings"

	gomponents "maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	html "maragu.dev/gomponents/html"

	"daygroups/internal/models"
	"daygroups/internal/stats"
)

// homePage renders the searchable group list. Every group is rendered;
// filtering is a case-insensitive substring match on the group name,
// applied live by the datastar search signal, which the ?q= form submit
// seeds so a shared link opens pre-filtered.
func homePage(snap *models.Snapshot, today models.DayKey, query string, modal gomponents.Node) gomponents.Node {
	returnTo := "/"
	if strings.TrimSpace(query) != "" {
		returnTo = "/?q=" + url.QueryEscape(query)
	}

	cards := make([]gomponents.Node, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		cards = append(cards, groupCard(g, snap.CurrentUser.ID, today, returnTo))
	}

	return appPage(
		"Home",
		"home",
		snap.CurrentUser,
		html.Div(
			data.Signals(map[string]any{"q": query}),
			html.Form(
				html.Class("search-row"),
				html.Method("get"),
				html.Action("/"),
				html.Input(
					html.Type("text"),
					html.Name("q"),
					html.Value(query),
					html.Class("search-input"),
					html.Placeholder("Search your groups..."),
					data.Bind("q"),
				),
				html.A(html.Href("/?modal=group-new"), html.Class("primary-btn"), gomponents.Text("+ New Group")),
			),
			html.Div(html.Class("group-list"), gomponents.Group(cards)),
		),
		modal,
	)
}

func groupCard(g *models.Group, currentUserID string, today models.DayKey, returnTo string) gomponents.Node {
	postedByMeToday := stats.PostedToday([]*models.Group{g}, currentUserID, today)

	expandLabel := "Expand"
	if g.Expanded {
		expandLabel = "Collapse"
	}

	posts := make([]gomponents.Node, 0, len(g.Posts))
	for i := range g.Posts {
		posts = append(posts, postCard(g, &g.Posts[i], currentUserID))
	}

	chips := make([]gomponents.Node, 0, len(g.Members))
	for _, m := range g.Members {
		chips = append(chips, html.Span(html.Class("chip"), gomponents.Text(m.Name)))
	}

	description := gomponents.Node(html.Span(html.Class("muted"), gomponents.Text("No description")))
	if g.Description != "" {
		description = gomponents.Text(g.Description)
	}

	contentClass := "group-content"
	if !g.Expanded {
		contentClass = "group-content hidden"
	}

	return html.Section(
		html.Class("group-card"),
		data.Show(containsExpr(g.Name)),
		html.Div(
			html.Class("group-header"),
			groupDot(g.Color),
			html.Div(
				html.Class("row"),
				html.Div(html.Class("group-title"), gomponents.Text(g.Name)),
				html.Div(html.Class("group-date"), gomponents.Text(today.Display())),
				postedTodayPill(postedByMeToday),
			),
			html.Div(
				html.Class("group-actions"),
				html.Form(
					html.Method("post"),
					html.Action("/groups/"+g.ID+"/expand"),
					html.Input(html.Type("hidden"), html.Name("return"), html.Value(returnTo)),
					html.Button(html.Type("submit"), html.Class("expand-btn"), gomponents.Text(expandLabel)),
				),
				html.A(
					html.Href("/?modal=post-new&group="+url.QueryEscape(g.ID)),
					html.Class("plus-btn"),
					html.TitleAttr("Add post"),
					gomponents.Text("+"),
				),
			),
		),
		html.Div(
			html.Class(contentClass),
			html.Div(html.Class("post-grid"), gomponents.Group(posts)),
			html.Div(
				html.Class("group-details"),
				html.Div(html.Strong(gomponents.Text("Description: ")), description),
				html.Div(html.Strong(gomponents.Text("Members: ")), gomponents.Group(chips)),
			),
		),
	)
}

func postCard(g *models.Group, p *models.Post, currentUserID string) gomponents.Node {
	authorClass := ""
	if p.AuthorID == currentUserID {
		authorClass = "me"
	}
	openHref := "/?modal=post&group=" + url.QueryEscape(g.ID) + "&post=" + url.QueryEscape(p.ID)

	return html.Article(
		html.Class("post-card"),
		html.A(
			html.Href(openHref),
			html.Img(html.Class("post-thumb"), html.Src(p.ImageRef), html.Alt("Post by "+p.AuthorName)),
		),
		html.Div(
			html.Class("post-meta"),
			html.Span(html.Class(authorClass), gomponents.Text(p.AuthorName)),
			html.A(html.Href(openHref), html.Class("icon"), html.TitleAttr("Open"), gomponents.Text("Open")),
		),
	)
}
