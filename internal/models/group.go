package models

// Group represents a circle of users with a shared daily-photo habit.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name, e.g. "Running Group". Never blank: a group
	// created or renamed without a name gets DefaultGroupName.
	Name string `json:"name"`

	// Color is the display tag shown next to the name (CSS color value).
	Color string `json:"color"`

	// Description is optional free text about the group's habit.
	Description string `json:"description,omitempty"`

	// Members lists the users in the group, unique by ID. The creator is
	// always added at creation time.
	Members []User `json:"members"`

	// Posts holds the group's posts, newest first by insertion convention.
	// Mutations never re-sort: edits keep position and deletes keep the
	// order of the survivors.
	Posts []Post `json:"posts"`

	// Expanded records whether the group's post grid is open on the Home
	// view. View state, but persisted with the rest of the snapshot.
	Expanded bool `json:"expanded"`
}

// DefaultGroupName is used when a group is saved with a blank name.
const DefaultGroupName = "Untitled Group"

// HasMember reports whether a user is in the group's member list.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// FindPost returns the index of the post with the given ID, or -1.
func (g *Group) FindPost(postID string) int {
	for i := range g.Posts {
		if g.Posts[i].ID == postID {
			return i
		}
	}
	return -1
}
