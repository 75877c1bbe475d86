package ui

import (
	"strconv"
	"strings"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"daygroups/internal/models"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

var navItems = []navItem{
	{Label: "Home", Href: "/", Key: "home"},
	{Label: "Groups", Href: "/groups", Key: "groups"},
	{Label: "You", Href: "/user", Key: "user"},
}

func appPage(title, active string, user models.User, body ...gomponents.Node) gomponents.Node {
	nav := make([]gomponents.Node, 0, len(navItems))
	for _, item := range navItems {
		className := "nav-tab"
		if item.Key == active {
			className = "nav-tab is-active"
		}
		nav = append(nav, html.A(html.Href(item.Href), html.Class(className), gomponents.Text(item.Label)))
	}

	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | Daily Groups")),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
			html.Script(
				html.Type("module"),
				html.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"),
			),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.Div(
					html.Class("topbar"),
					html.Strong(gomponents.Text("Daily Groups")),
					html.Span(html.Class("avatar"), html.TitleAttr(user.Name), gomponents.Text(user.DisplayInitials())),
				),
				html.Nav(html.Class("nav"), gomponents.Group(nav)),
				gomponents.Group(body),
			),
		),
	)
}

func errorPage(title, message string) gomponents.Node {
	return html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text(title+" | Daily Groups")),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(html.Class("page-title"), gomponents.Text(title)),
				html.P(gomponents.Text(message)),
				html.P(html.A(html.Href("/"), gomponents.Text("Back to home"))),
			),
		),
	)
}

// groupDot renders the colored tag shown next to a group's name.
func groupDot(color string) gomponents.Node {
	return html.Span(html.Class("group-dot"), html.StyleAttr("background:"+color))
}

// postedTodayPill renders the daily-status indicator for a group.
func postedTodayPill(done bool) gomponents.Node {
	label := "Post today required"
	className := "post-today"
	if done {
		label = "Posted today"
		className = "post-today is-done"
	}
	return html.Span(html.Class(className), html.Span(html.Class("dot")), gomponents.Text(label))
}

// containsExpr builds the datastar show-expression for the Home quick
// filter: the card stays visible while the search signal is a
// case-insensitive substring of the value.
func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q.trim() === '' || " + strconv.Quote(lower) + ".includes($q.trim().toLowerCase())"
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return strconv.Itoa(n) + " " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
