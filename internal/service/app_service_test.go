package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"daygroups/internal/models"
	"daygroups/internal/storage/sqlite"
)

var testClock = func() time.Time {
	return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
}

// newTestApp spins up a service over a fresh temp SQLite store. The
// returned reopen func builds a second service over the same database to
// assert on persisted state.
func newTestApp(t *testing.T) (*AppService, func() *AppService) {
	t.Helper()

	store, err := sqlite.New(t.TempDir() + "/test.db")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	app, err := NewWithClock(context.Background(), store, testClock)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	reopen := func() *AppService {
		again, err := NewWithClock(context.Background(), store, testClock)
		if err != nil {
			t.Fatalf("failed to reopen service: %v", err)
		}
		return again
	}
	return app, reopen
}

func findGroupByName(t *testing.T, app *AppService, name string) models.Group {
	t.Helper()
	for _, g := range app.Snapshot().Groups {
		if g.Name == name {
			return *g
		}
	}
	t.Fatalf("no group named %q", name)
	return models.Group{}
}

func TestSeeding(t *testing.T) {
	app, reopen := newTestApp(t)

	snap := app.Snapshot()
	if len(snap.Groups) != 2 {
		t.Fatalf("expected 2 seed groups, got %d", len(snap.Groups))
	}

	running := findGroupByName(t, app, "Running Group")
	if len(running.Posts) != 4 {
		t.Errorf("Running Group posts = %d, want 4", len(running.Posts))
	}
	if !running.Expanded {
		t.Error("Running Group should seed expanded")
	}
	if !running.HasMember(snap.CurrentUser.ID) {
		t.Error("current user should be a member of Running Group")
	}
	for _, p := range running.Posts {
		if p.AuthorID == snap.CurrentUser.ID {
			t.Error("seed posts should all be by other users")
		}
	}

	friends := findGroupByName(t, app, "Friends Group")
	if friends.Expanded {
		t.Error("Friends Group should seed collapsed")
	}

	// The seed is saved immediately: a second service over the same store
	// sees identical group IDs rather than reseeding.
	again := reopen()
	if again.Snapshot().Groups[0].ID != snap.Groups[0].ID {
		t.Error("expected reopened service to load the persisted seed, not reseed")
	}
}

func TestPostedTodayAndStreakScenario(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	// Seed: 4 posts dated today in Running Group, all by other users.
	if app.PostedToday() {
		t.Fatal("PostedToday should be false before the current user posts")
	}
	if got := app.DailyStreak(); got != 0 {
		t.Fatalf("DailyStreak = %d, want 0 before posting", got)
	}

	running := findGroupByName(t, app, "Running Group")
	if _, err := app.AddPost(ctx, running.ID, "data:image/png;base64,xxxx", "First run"); err != nil {
		t.Fatalf("AddPost failed: %v", err)
	}

	if !app.PostedToday() {
		t.Error("PostedToday should be true after posting")
	}
	if got := app.DailyStreak(); got != 1 {
		t.Errorf("DailyStreak = %d, want 1", got)
	}
	if got := app.PostsThisWeek(); got != 1 {
		t.Errorf("PostsThisWeek = %d, want 1", got)
	}
}

func TestAddPost(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	t.Run("missing image is refused", func(t *testing.T) {
		running := findGroupByName(t, app, "Running Group")
		_, err := app.AddPost(ctx, running.ID, "", "no photo")
		if !errors.Is(err, ErrMissingImage) {
			t.Fatalf("AddPost without image: got %v, want ErrMissingImage", err)
		}
	})

	t.Run("prepends and forces expanded", func(t *testing.T) {
		friends := findGroupByName(t, app, "Friends Group")
		if friends.Expanded {
			t.Fatal("precondition: Friends Group collapsed")
		}

		p, err := app.AddPost(ctx, friends.ID, "data:image/png;base64,xxxx", "  hello  ")
		if err != nil {
			t.Fatalf("AddPost failed: %v", err)
		}
		if p.Caption != "hello" {
			t.Errorf("caption = %q, want trimmed %q", p.Caption, "hello")
		}
		if p.Date != app.Today() {
			t.Errorf("post date = %s, want today %s", p.Date, app.Today())
		}

		after := findGroupByName(t, app, "Friends Group")
		if !after.Expanded {
			t.Error("group should be expanded after posting")
		}
		if after.Posts[0].ID != p.ID {
			t.Error("new post should be first in the list")
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := app.AddPost(ctx, "nope", "data:image/png;base64,xxxx", "")
		if !errors.Is(err, ErrGroupNotFound) {
			t.Fatalf("got %v, want ErrGroupNotFound", err)
		}
	})
}

func TestGroupLifecycle(t *testing.T) {
	app, reopen := newTestApp(t)
	ctx := context.Background()

	t.Run("blank name defaults and persists", func(t *testing.T) {
		g, err := app.CreateGroup(ctx, "   ", "#6b9bff", "")
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if g.Name != models.DefaultGroupName {
			t.Errorf("name = %q, want %q", g.Name, models.DefaultGroupName)
		}
		if !g.HasMember(app.CurrentUser().ID) {
			t.Error("creator should be a member of the new group")
		}

		persisted, err := reopen().Group(g.ID)
		if err != nil {
			t.Fatalf("persisted group lookup failed: %v", err)
		}
		if persisted.Name != models.DefaultGroupName {
			t.Errorf("persisted name = %q, want %q", persisted.Name, models.DefaultGroupName)
		}
	})

	t.Run("create prepends to the list", func(t *testing.T) {
		g, err := app.CreateGroup(ctx, "Newest", "#123456", "")
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if app.Snapshot().Groups[0].ID != g.ID {
			t.Error("new group should be first in the list")
		}
	})

	t.Run("update rewrites fields and keeps posts", func(t *testing.T) {
		running := findGroupByName(t, app, "Running Group")
		if err := app.UpdateGroup(ctx, running.ID, "", "#000000", "new desc"); err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		after, err := app.Group(running.ID)
		if err != nil {
			t.Fatalf("Group failed: %v", err)
		}
		if after.Name != models.DefaultGroupName {
			t.Errorf("blank rename: name = %q, want %q", after.Name, models.DefaultGroupName)
		}
		if len(after.Posts) != len(running.Posts) {
			t.Error("update must not touch posts")
		}
	})

	t.Run("delete removes the group", func(t *testing.T) {
		g, err := app.CreateGroup(ctx, "Doomed", "#ffffff", "")
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if err := app.DeleteGroup(ctx, g.ID); err != nil {
			t.Fatalf("DeleteGroup failed: %v", err)
		}
		if _, err := app.Group(g.ID); !errors.Is(err, ErrGroupNotFound) {
			t.Fatalf("got %v, want ErrGroupNotFound", err)
		}
		if _, err := reopen().Group(g.ID); !errors.Is(err, ErrGroupNotFound) {
			t.Fatal("deleted group should be absent after reload")
		}
	})

	t.Run("toggle expanded persists", func(t *testing.T) {
		friends := findGroupByName(t, app, "Friends Group")
		before := friends.Expanded
		if err := app.ToggleGroupExpanded(ctx, friends.ID); err != nil {
			t.Fatalf("ToggleGroupExpanded failed: %v", err)
		}
		persisted, err := reopen().Group(friends.ID)
		if err != nil {
			t.Fatalf("persisted lookup failed: %v", err)
		}
		if persisted.Expanded == before {
			t.Error("expanded flag should flip and persist")
		}
	})
}

func TestPostEditing(t *testing.T) {
	app, reopen := newTestApp(t)
	ctx := context.Background()

	running := findGroupByName(t, app, "Running Group")
	mine, err := app.AddPost(ctx, running.ID, "data:image/png;base64,xxxx", "draft")
	if err != nil {
		t.Fatalf("AddPost failed: %v", err)
	}

	t.Run("caption edits in place without reorder", func(t *testing.T) {
		if err := app.UpdatePostCaption(ctx, running.ID, mine.ID, "final"); err != nil {
			t.Fatalf("UpdatePostCaption failed: %v", err)
		}
		after, _ := app.Group(running.ID)
		if after.Posts[0].ID != mine.ID {
			t.Error("edited post should keep its position")
		}
		if after.Posts[0].Caption != "final" {
			t.Errorf("caption = %q, want %q", after.Posts[0].Caption, "final")
		}
		if after.Posts[0].Date != mine.Date {
			t.Error("edit must not change the post date")
		}
	})

	t.Run("cannot edit another user's post", func(t *testing.T) {
		g, _ := app.Group(running.ID)
		var theirs models.Post
		for _, p := range g.Posts {
			if p.AuthorID != app.CurrentUser().ID {
				theirs = p
				break
			}
		}
		if err := app.UpdatePostCaption(ctx, running.ID, theirs.ID, "hijack"); !errors.Is(err, ErrNotPostAuthor) {
			t.Fatalf("got %v, want ErrNotPostAuthor", err)
		}
		if err := app.DeletePost(ctx, running.ID, theirs.ID); !errors.Is(err, ErrNotPostAuthor) {
			t.Fatalf("got %v, want ErrNotPostAuthor", err)
		}
	})

	t.Run("delete removes and stays gone after reload", func(t *testing.T) {
		if err := app.DeletePost(ctx, running.ID, mine.ID); err != nil {
			t.Fatalf("DeletePost failed: %v", err)
		}
		persisted, err := reopen().Group(running.ID)
		if err != nil {
			t.Fatalf("persisted lookup failed: %v", err)
		}
		if persisted.FindPost(mine.ID) >= 0 {
			t.Error("deleted post should be absent after reload")
		}
		if len(persisted.Posts) != 4 {
			t.Errorf("remaining posts = %d, want the 4 seed posts", len(persisted.Posts))
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		if err := app.UpdatePostCaption(ctx, running.ID, "nope", "x"); !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("got %v, want ErrPostNotFound", err)
		}
	})
}
