package models

import "strings"

// User represents a person in the app.
//
// There are no accounts: the current user is fixed at seed time, and every
// other user exists only as a member entry or post author inside a group.
type User struct {
	// ID is the unique identifier for the user (UUID format for created
	// users; seed users keep stable seed IDs).
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Initials is the short avatar label. Optional; DisplayInitials derives
	// one from Name when empty.
	Initials string `json:"initials,omitempty"`
}

// DisplayInitials returns the avatar label for the user: the stored
// initials if set, otherwise the first letters of up to two name words,
// upper-cased. Falls back to "ME" for a blank user.
func (u User) DisplayInitials() string {
	if u.Initials != "" {
		return u.Initials
	}
	var b strings.Builder
	for _, word := range strings.Fields(u.Name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "ME"
	}
	return b.String()
}

// FirstName returns the first word of the user's name, used as the author
// label on new posts. Returns "Me" for a blank name.
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return "Me"
	}
	return fields[0]
}
