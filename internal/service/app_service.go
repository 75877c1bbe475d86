// Package service holds the application controller: a single object that
// owns the loaded state snapshot and mediates every read and mutation.
// Handlers never touch shared state directly — they call methods here, and
// each mutation persists the full snapshot before returning.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"daygroups/internal/models"
	"daygroups/internal/stats"
	"daygroups/internal/storage"
)

var (
	// ErrGroupNotFound is returned when a group ID has no live group.
	ErrGroupNotFound = errors.New("group not found")

	// ErrPostNotFound is returned when a post ID has no live post in the
	// addressed group.
	ErrPostNotFound = errors.New("post not found")

	// ErrMissingImage is returned when a post is committed without an
	// image reference. The UI refuses the commit silently.
	ErrMissingImage = errors.New("post requires an image")

	// ErrNotPostAuthor is returned when someone other than the author
	// tries to edit or delete a post.
	ErrNotPostAuthor = errors.New("post belongs to another user")
)

// AppService owns the state snapshot. All readers and writers go through
// its methods; the mutex serializes handler goroutines so mutation plus
// save behaves like the single-threaded original.
type AppService struct {
	mu    sync.RWMutex
	snap  *models.Snapshot
	store storage.Store
	now   func() time.Time
}

// New loads the persisted snapshot from the store, seeding fresh state if
// nothing usable is stored.
func New(ctx context.Context, store storage.Store) (*AppService, error) {
	return NewWithClock(ctx, store, time.Now)
}

// NewWithClock is New with an injectable clock, used by tests to pin
// "today" for streak and week-window assertions.
func NewWithClock(ctx context.Context, store storage.Store, now func() time.Time) (*AppService, error) {
	s := &AppService{store: store, now: now}

	snap, err := store.LoadSnapshot(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		snap = SeedSnapshot(models.Today(now()))
		if err := store.SaveSnapshot(ctx, snap); err != nil {
			return nil, fmt.Errorf("failed to save seed snapshot: %w", err)
		}
		slog.Info("Seeded fresh state", "groups", len(snap.Groups))
	case err != nil:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	s.snap = snap
	return s, nil
}

// Snapshot returns a deep copy of the current state for rendering.
func (s *AppService) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// CurrentUser returns the distinguished current user record.
func (s *AppService) CurrentUser() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.CurrentUser
}

// Group returns a copy of the group with the given ID.
func (s *AppService) Group(groupID string) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g := s.snap.FindGroup(groupID)
	if g == nil {
		return models.Group{}, ErrGroupNotFound
	}
	cp := *g
	cp.Members = append([]models.User(nil), g.Members...)
	cp.Posts = append([]models.Post(nil), g.Posts...)
	return cp, nil
}

// Today returns the current calendar day key.
func (s *AppService) Today() models.DayKey {
	return models.Today(s.now())
}

// PostedToday reports whether the current user posted to any group today.
func (s *AppService) PostedToday() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.PostedToday(s.snap.Groups, s.snap.CurrentUser.ID, models.Today(s.now()))
}

// PostsThisWeek counts the current user's posts over the last 7 days.
func (s *AppService) PostsThisWeek() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.PostsThisWeek(s.snap.Groups, s.snap.CurrentUser.ID, models.Today(s.now()))
}

// DailyStreak counts the current user's consecutive posting days.
func (s *AppService) DailyStreak() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.DailyStreak(s.snap.Groups, s.snap.CurrentUser.ID, models.Today(s.now()))
}

// CreateGroup inserts a new group at the head of the list. A blank name
// becomes models.DefaultGroupName, and the current user is always its
// first member.
func (s *AppService) CreateGroup(ctx context.Context, name, color, description string) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := &models.Group{
		ID:          uuid.New().String(),
		Name:        normalizeGroupName(name),
		Color:       color,
		Description: strings.TrimSpace(description),
		Members:     []models.User{s.snap.CurrentUser},
		Posts:       []models.Post{},
	}
	s.snap.Groups = append([]*models.Group{g}, s.snap.Groups...)

	if err := s.persist(ctx); err != nil {
		return models.Group{}, err
	}
	slog.Info("Group created", "group_id", g.ID, "name", g.Name)
	return *g, nil
}

// UpdateGroup rewrites a group's name, color, and description. Members and
// posts are untouched, and a blank name becomes models.DefaultGroupName.
func (s *AppService) UpdateGroup(ctx context.Context, groupID, name, color, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.snap.FindGroup(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	g.Name = normalizeGroupName(name)
	g.Color = color
	g.Description = strings.TrimSpace(description)

	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.Info("Group updated", "group_id", groupID)
	return nil
}

// DeleteGroup removes a group and all its posts.
func (s *AppService) DeleteGroup(ctx context.Context, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snap.Groups[:0]
	found := false
	for _, g := range s.snap.Groups {
		if g.ID == groupID {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return ErrGroupNotFound
	}
	s.snap.Groups = kept

	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.Info("Group deleted", "group_id", groupID)
	return nil
}

// SetGroupExpanded opens or collapses a group's post grid on Home.
func (s *AppService) SetGroupExpanded(ctx context.Context, groupID string, expanded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.snap.FindGroup(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	g.Expanded = expanded
	return s.persist(ctx)
}

// ToggleGroupExpanded flips a group's expand/collapse state.
func (s *AppService) ToggleGroupExpanded(ctx context.Context, groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.snap.FindGroup(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	g.Expanded = !g.Expanded
	return s.persist(ctx)
}

// AddPost prepends a post by the current user to the group, dated today,
// and forces the group expanded so the new post is visible. An empty image
// reference refuses the commit with ErrMissingImage.
func (s *AppService) AddPost(ctx context.Context, groupID, imageRef, caption string) (models.Post, error) {
	if imageRef == "" {
		return models.Post{}, ErrMissingImage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.snap.FindGroup(groupID)
	if g == nil {
		return models.Post{}, ErrGroupNotFound
	}

	p := models.Post{
		ID:         uuid.New().String(),
		AuthorID:   s.snap.CurrentUser.ID,
		AuthorName: s.snap.CurrentUser.FirstName(),
		ImageRef:   imageRef,
		Caption:    strings.TrimSpace(caption),
		Date:       models.Today(s.now()),
	}
	g.Posts = append([]models.Post{p}, g.Posts...)
	g.Expanded = true

	if err := s.persist(ctx); err != nil {
		return models.Post{}, err
	}
	slog.Info("Post added", "group_id", groupID, "post_id", p.ID, "date", p.Date)
	return p, nil
}

// UpdatePostCaption rewrites a post's caption in place. Only the author may
// edit, the post keeps its position, and its date never changes.
func (s *AppService) UpdatePostCaption(ctx context.Context, groupID, postID, caption string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.snap.FindGroup(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	i := g.FindPost(postID)
	if i < 0 {
		return ErrPostNotFound
	}
	if g.Posts[i].AuthorID != s.snap.CurrentUser.ID {
		return ErrNotPostAuthor
	}
	g.Posts[i].Caption = strings.TrimSpace(caption)

	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.Info("Post caption updated", "group_id", groupID, "post_id", postID)
	return nil
}

// DeletePost removes a post by ID without reordering the survivors. Only
// the author may delete.
func (s *AppService) DeletePost(ctx context.Context, groupID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.snap.FindGroup(groupID)
	if g == nil {
		return ErrGroupNotFound
	}
	i := g.FindPost(postID)
	if i < 0 {
		return ErrPostNotFound
	}
	if g.Posts[i].AuthorID != s.snap.CurrentUser.ID {
		return ErrNotPostAuthor
	}
	g.Posts = append(g.Posts[:i], g.Posts[i+1:]...)

	if err := s.persist(ctx); err != nil {
		return err
	}
	slog.Info("Post deleted", "group_id", groupID, "post_id", postID)
	return nil
}

// persist writes the full snapshot. Callers hold the write lock.
func (s *AppService) persist(ctx context.Context) error {
	if err := s.store.SaveSnapshot(ctx, s.snap); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

func normalizeGroupName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.DefaultGroupName
	}
	return name
}
