package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GroupCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	_, err := h.App.CreateGroup(r.Context(),
		r.Form.Get("name"),
		r.Form.Get("color"),
		r.Form.Get("description"),
	)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func (h *Handler) GroupUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	err := h.App.UpdateGroup(r.Context(),
		chi.URLParam(r, "groupID"),
		r.Form.Get("name"),
		r.Form.Get("color"),
		r.Form.Get("description"),
	)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func (h *Handler) GroupDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.App.DeleteGroup(r.Context(), chi.URLParam(r, "groupID")); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// GroupToggleExpand flips a group's expand/collapse state from its Home
// card.
func (h *Handler) GroupToggleExpand(w http.ResponseWriter, r *http.Request) {
	if err := h.App.ToggleGroupExpanded(r.Context(), chi.URLParam(r, "groupID")); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// GroupOpen expands a group and lands on Home, the "Open" action of the
// Groups and User tiles.
func (h *Handler) GroupOpen(w http.ResponseWriter, r *http.Request) {
	if err := h.App.SetGroupExpanded(r.Context(), chi.URLParam(r, "groupID"), true); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
