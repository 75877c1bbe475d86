package service

import (
	"github.com/google/uuid"

	"daygroups/internal/models"
	"daygroups/internal/placeholder"
)

// SeedSnapshot builds the starter state used when nothing is persisted:
// two groups with a handful of members and same-day posts, so the app is
// alive on first open. The current user is a member of both groups but has
// not posted anywhere yet.
func SeedSnapshot(today models.DayKey) *models.Snapshot {
	me := models.User{ID: "u_me", Name: "Kendall Jenkins", Initials: "KJ"}

	joe := models.User{ID: "u1", Name: "Joe"}
	dylan := models.User{ID: "u2", Name: "Dylan"}
	alice := models.User{ID: "u3", Name: "Alice"}
	anne := models.User{ID: "u4", Name: "Anne"}
	sam := models.User{ID: "u5", Name: "Sam"}
	dee := models.User{ID: "u6", Name: "Dee"}

	running := &models.Group{
		ID:          uuid.New().String(),
		Name:        "Running Group",
		Color:       "#2e6bff",
		Description: "Post a photo of your run every day. Pace doesn't matter — consistency does.",
		Members:     []models.User{joe, dylan, alice, anne, me},
		Posts: []models.Post{
			seedPost(joe, "RUN", "", "Morning miles", today),
			seedPost(dylan, "RUN", "", "Track day", today),
			seedPost(alice, "RUN", "", "City loop", today),
			seedPost(anne, "RUN", "", "Hill repeats", today),
		},
		Expanded: true,
	}

	friends := &models.Group{
		ID:          uuid.New().String(),
		Name:        "Friends Group",
		Color:       "#ff6b29",
		Description: "Daily anything — share a moment or a vibe with friends.",
		Members:     []models.User{sam, dee, me},
		Posts: []models.Post{
			seedPost(sam, "FRIENDS", "#ffb86b", "Latte art", today),
		},
		Expanded: false,
	}

	return &models.Snapshot{
		Groups:      []*models.Group{running, friends},
		CurrentUser: me,
	}
}

func seedPost(author models.User, label, background, caption string, day models.DayKey) models.Post {
	return models.Post{
		ID:         uuid.New().String(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		ImageRef:   placeholder.SVG(label, background),
		Caption:    caption,
		Date:       day,
	}
}
