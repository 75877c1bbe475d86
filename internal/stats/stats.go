// Package stats computes engagement metrics from the current state.
//
// Every function here is pure: it takes the group list and a "today" key
// and derives a value, so callers decide what "today" means (the service
// passes local time, tests pass fixed days).
package stats

import "daygroups/internal/models"

// maxStreakDays caps the backward streak walk. A run longer than this still
// reports 30 — a deliberate bound on how far back the scan goes, not a bug.
const maxStreakDays = 30

// PostedToday reports whether the user posted to any group on the given day.
func PostedToday(groups []*models.Group, userID string, today models.DayKey) bool {
	return postedOn(groups, userID, today)
}

// PostsThisWeek counts the user's posts across all groups dated within the
// inclusive 7-day window ending today (today minus 6 days through today).
func PostsThisWeek(groups []*models.Group, userID string, today models.DayKey) int {
	start := today.AddDays(-6)
	count := 0
	for _, g := range groups {
		for _, p := range g.Posts {
			if p.AuthorID != userID {
				continue
			}
			if p.Date.Before(start) || today.Before(p.Date) {
				continue
			}
			count++
		}
	}
	return count
}

// DailyStreak counts consecutive days, ending today, on which the user
// posted to any group. The walk stops at the first gap and never looks
// further back than maxStreakDays.
func DailyStreak(groups []*models.Group, userID string, today models.DayKey) int {
	streak := 0
	for i := 0; i < maxStreakDays; i++ {
		if !postedOn(groups, userID, today.AddDays(-i)) {
			break
		}
		streak++
	}
	return streak
}

func postedOn(groups []*models.Group, userID string, day models.DayKey) bool {
	for _, g := range groups {
		for _, p := range g.Posts {
			if p.AuthorID == userID && p.Date == day {
				return true
			}
		}
	}
	return false
}
