// Package ui renders the three app views (Home, Groups, User) and hosts
// the modal forms for creating and editing groups and posts. Rendering is
// read-only over a snapshot copy; every mutation goes through a POST
// handler that calls the service, persists, and redirects back to the view
// it came from.
package ui

import (
	"errors"
	"net/http"
	"strings"

	gomponents "maragu.dev/gomponents"

	"daygroups/internal/service"
)

type Handler struct {
	App *service.AppService
}

func NewHandler(app *service.AppService) *Handler {
	return &Handler{App: app}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		renderHTML(w, http.StatusNotFound, errorPage("Group Not Found", "That group no longer exists."))
	case errors.Is(err, service.ErrPostNotFound):
		renderHTML(w, http.StatusNotFound, errorPage("Post Not Found", "That post no longer exists."))
	case errors.Is(err, service.ErrNotPostAuthor):
		renderHTML(w, http.StatusForbidden, errorPage("Not Allowed", "Only the author can change this post."))
	default:
		renderHTML(w, http.StatusInternalServerError, errorPage("Something Went Wrong", "The action could not be completed."))
	}
}

// returnPath extracts the view to redirect back to after a form commit.
// Only bare local paths are honored; anything else falls back to Home.
func returnPath(r *http.Request) string {
	p := r.FormValue("return")
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return "/"
	}
	return p
}
