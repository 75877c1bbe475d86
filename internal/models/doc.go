// Package models defines the core domain models for Daily Groups.
//
// # Models
//
//   - User: A person who appears as a group member and post author
//   - Group: A circle of users posting one photo per day
//   - Post: A single photo shared to one group on one calendar day
//   - Snapshot: The full persisted state (all groups plus the current user)
//   - DayKey: A calendar date at day granularity
//
// Exactly one distinguished "current user" exists per process; other users
// are referenced read-only as group members and post authors.
//
// # Design Principles
//
//  1. **Single snapshot**: the whole state serializes as one JSON document,
//     so every model here must round-trip through encoding/json
//  2. **Avoid circular references**: posts carry author ID and display name
//     rather than pointers back into member lists
//  3. **Day granularity**: posting cadence is per calendar day, so posts
//     store a DayKey, never a timestamp
package models
