package ui

import (
	"net/url"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"daygroups/internal/models"
	"daygroups/internal/stats"
)

func groupsPage(snap *models.Snapshot, today models.DayKey, modal gomponents.Node) gomponents.Node {
	tiles := make([]gomponents.Node, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		tiles = append(tiles, groupTile(g, snap.CurrentUser.ID, today, "/groups", true))
	}

	return appPage(
		"Your Groups",
		"groups",
		snap.CurrentUser,
		html.Div(
			html.Class("row spread"),
			html.H2(gomponents.Text("Your Groups")),
			html.A(html.Href("/groups?modal=group-new"), html.Class("primary-btn"), gomponents.Text("+ Create Group")),
		),
		html.Div(html.Class("grid cols-3"), gomponents.Group(tiles)),
		modal,
	)
}

// groupTile renders a group summary for the Groups and User views. The Open
// action expands the group and returns to Home; editable tiles also link to
// the group editor modal.
func groupTile(g *models.Group, currentUserID string, today models.DayKey, base string, editable bool) gomponents.Node {
	postedToday := stats.PostedToday([]*models.Group{g}, currentUserID, today)

	status := pluralize(len(g.Members), "member", "members")
	if editable {
		if postedToday {
			status += " • Posted today"
		} else {
			status += " • Post today required"
		}
	}

	actions := []gomponents.Node{
		html.Form(
			html.Method("post"),
			html.Action("/groups/"+g.ID+"/open"),
			html.Button(html.Type("submit"), html.Class("ghost-btn"), gomponents.Text("Open")),
		),
	}
	if editable {
		actions = append(actions, html.A(
			html.Href(base+"?modal=group-edit&group="+url.QueryEscape(g.ID)),
			html.Class("ghost-btn"),
			gomponents.Text("Edit"),
		))
	}

	nodes := []gomponents.Node{
		html.Div(
			html.Class("tile-head"),
			groupDot(g.Color),
			html.Div(
				html.Div(html.Class("tile-name"), gomponents.Text(g.Name)),
				html.Div(html.Class("muted small"), gomponents.Text(status)),
			),
			html.Div(html.Class("tile-actions"), gomponents.Group(actions)),
		),
	}
	if editable {
		nodes = append(nodes, html.Div(html.Class("muted"), gomponents.Text(g.Description)))
	}

	return html.Div(html.Class("group-tile"), gomponents.Group(nodes))
}
