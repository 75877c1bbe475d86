package ui

import (
	"github.com/go-chi/chi/v5"
)

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.HomePage)
	r.Get("/groups", h.GroupsPage)
	r.Get("/user", h.UserPage)
	r.Get("/static/app.css", h.Stylesheet)

	r.Post("/groups", h.GroupCreate)
	r.Post("/groups/{groupID}/update", h.GroupUpdate)
	r.Post("/groups/{groupID}/delete", h.GroupDelete)
	r.Post("/groups/{groupID}/expand", h.GroupToggleExpand)
	r.Post("/groups/{groupID}/open", h.GroupOpen)
	r.Post("/groups/{groupID}/posts", h.PostCreate)
	r.Post("/groups/{groupID}/posts/{postID}/update", h.PostUpdate)
	r.Post("/groups/{groupID}/posts/{postID}/delete", h.PostDelete)

	// Unknown locations fall back to the Home view.
	r.NotFound(h.HomePage)
}
