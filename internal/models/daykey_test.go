package models

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	noon := time.Date(2026, 8, 29, 12, 34, 56, 0, time.UTC)

	if got := Today(noon); got != "2026-08-29" {
		t.Errorf("Today = %s, want 2026-08-29", got)
	}

	t.Run("AddDays crosses month boundaries", func(t *testing.T) {
		if got := DayKey("2026-08-29").AddDays(3); got != "2026-09-01" {
			t.Errorf("AddDays(3) = %s, want 2026-09-01", got)
		}
		if got := DayKey("2026-03-01").AddDays(-1); got != "2026-02-28" {
			t.Errorf("AddDays(-1) = %s, want 2026-02-28", got)
		}
	})

	t.Run("Before is chronological", func(t *testing.T) {
		if !DayKey("2026-08-28").Before("2026-08-29") {
			t.Error("expected 08-28 before 08-29")
		}
		if DayKey("2026-08-29").Before("2026-08-29") {
			t.Error("a day is not before itself")
		}
	})

	t.Run("Display", func(t *testing.T) {
		if got := DayKey("2026-08-29").Display(); got != "Aug 29, 2026" {
			t.Errorf("Display = %q, want %q", got, "Aug 29, 2026")
		}
	})
}

func TestUserDisplayInitials(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"stored initials win", User{Name: "Kendall Jenkins", Initials: "KJ"}, "KJ"},
		{"derived from two words", User{Name: "Kendall Jenkins"}, "KJ"},
		{"single word", User{Name: "Joe"}, "J"},
		{"extra words ignored", User{Name: "Anna Maria Luisa"}, "AM"},
		{"blank falls back", User{}, "ME"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayInitials(); got != tt.want {
				t.Errorf("DisplayInitials = %q, want %q", got, tt.want)
			}
		})
	}
}
