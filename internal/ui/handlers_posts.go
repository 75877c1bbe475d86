package ui

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"daygroups/internal/service"
)

// maxPhotoBytes caps uploaded photos. Images are embedded as data URIs in
// the snapshot, so the cap bounds snapshot growth per post.
const maxPhotoBytes = 8 << 20

// PostCreate commits a new post from the add-post modal. A submit without
// a chosen photo is refused silently: redirect back with no mutation, the
// same outcome as never pressing Post.
func (h *Handler) PostCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}

	imageRef, err := photoDataURI(r)
	if err != nil {
		http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
		return
	}

	_, err = h.App.AddPost(r.Context(), chi.URLParam(r, "groupID"), imageRef, r.FormValue("caption"))
	if errors.Is(err, service.ErrMissingImage) {
		http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
		return
	}
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func (h *Handler) PostUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	err := h.App.UpdatePostCaption(r.Context(),
		chi.URLParam(r, "groupID"),
		chi.URLParam(r, "postID"),
		r.Form.Get("caption"),
	)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func (h *Handler) PostDelete(w http.ResponseWriter, r *http.Request) {
	err := h.App.DeletePost(r.Context(),
		chi.URLParam(r, "groupID"),
		chi.URLParam(r, "postID"),
	)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// photoDataURI reads the uploaded photo into an embeddable data URI.
func photoDataURI(r *http.Request) (string, error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		return "", err
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errors.New("empty photo upload")
	}
	if len(raw) > maxPhotoBytes {
		return "", errors.New("photo upload exceeds size cap")
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(raw)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
