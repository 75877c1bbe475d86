package ui

import (
	"net/http"
)

func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	snap := h.App.Snapshot()
	renderHTML(w, http.StatusOK, homePage(snap, h.App.Today(), r.URL.Query().Get("q"), h.modalNode(r)))
}

func (h *Handler) GroupsPage(w http.ResponseWriter, r *http.Request) {
	snap := h.App.Snapshot()
	renderHTML(w, http.StatusOK, groupsPage(snap, h.App.Today(), h.modalNode(r)))
}

func (h *Handler) UserPage(w http.ResponseWriter, r *http.Request) {
	snap := h.App.Snapshot()
	st := userStats{
		Streak:      h.App.DailyStreak(),
		WeekCount:   h.App.PostsThisWeek(),
		PostedToday: h.App.PostedToday(),
	}
	renderHTML(w, http.StatusOK, userPage(snap, h.App.Today(), st, h.modalNode(r)))
}
