package models

// Post represents a single photo shared to one group.
type Post struct {
	// ID is the unique identifier for the post (UUID format).
	ID string `json:"id"`

	// AuthorID identifies the user who posted. Ownership checks compare
	// this against the viewer's ID.
	AuthorID string `json:"userId"`

	// AuthorName is the display name shown on the post card. Denormalized
	// so a post renders without resolving the member list.
	AuthorName string `json:"userName"`

	// ImageRef is an opaque content reference: either a generated SVG
	// placeholder data URI or a data URI built from an uploaded file.
	ImageRef string `json:"imageUrl"`

	// Caption is optional free text.
	Caption string `json:"caption,omitempty"`

	// Date is the calendar day the post was created. Fixed at creation;
	// edits never change it.
	Date DayKey `json:"date"`
}
