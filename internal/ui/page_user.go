package ui

import (
	"strconv"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"daygroups/internal/models"
)

// userStats carries the derived metrics the User view displays.
type userStats struct {
	Streak      int
	WeekCount   int
	PostedToday bool
}

func userPage(snap *models.Snapshot, today models.DayKey, st userStats, modal gomponents.Node) gomponents.Node {
	tiles := make([]gomponents.Node, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		tiles = append(tiles, groupTile(g, snap.CurrentUser.ID, today, "/user", false))
	}

	todayLabel := "Pending"
	if st.PostedToday {
		todayLabel = "Complete"
	}

	// Streak bar fills 10% per day, full at 10 days.
	barWidth := 10 * st.Streak
	if barWidth > 100 {
		barWidth = 100
	}

	return appPage(
		snap.CurrentUser.Name,
		"user",
		snap.CurrentUser,
		html.Div(
			html.Class("row spread"),
			html.H2(gomponents.Text(snap.CurrentUser.Name)),
			html.Span(html.Class("chip"), gomponents.Text("Member of "+pluralize(len(snap.Groups), "group", "groups"))),
		),
		html.Div(
			html.Class("stats"),
			html.Div(
				html.Class("stat-card"),
				html.Div(html.Class("muted"), gomponents.Text("Daily Streak")),
				html.Div(html.Class("stat-value"), gomponents.Text(pluralize(st.Streak, "day", "days"))),
				html.Div(
					html.Class("progress-bar"),
					html.Span(html.StyleAttr("width:"+strconv.Itoa(barWidth)+"%")),
				),
			),
			html.Div(
				html.Class("stat-card"),
				html.Div(html.Class("muted"), gomponents.Text("Posts This Week")),
				html.Div(html.Class("stat-value"), gomponents.Text(strconv.Itoa(st.WeekCount))),
				html.Div(html.Class("muted small"), gomponents.Text("Across all groups")),
			),
			html.Div(
				html.Class("stat-card"),
				html.Div(html.Class("muted"), gomponents.Text("Today")),
				html.Div(html.Class("stat-value"), gomponents.Text(todayLabel)),
				html.Div(html.Class("muted small"), gomponents.Text(today.Display())),
			),
		),
		html.Div(html.Class("section-title"), gomponents.Text("Your Groups")),
		html.Div(html.Class("grid cols-3"), gomponents.Group(tiles)),
		modal,
	)
}
