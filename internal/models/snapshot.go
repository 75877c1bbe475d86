package models

// Snapshot is the full persisted state: every group with its members and
// posts, plus the current user record. The whole thing is written on every
// mutation and read back on startup — there are no partial updates.
type Snapshot struct {
	Groups      []*Group `json:"groups"`
	CurrentUser User     `json:"currentUser"`
}

// FindGroup returns the group with the given ID, or nil.
func (s *Snapshot) FindGroup(groupID string) *Group {
	for _, g := range s.Groups {
		if g.ID == groupID {
			return g
		}
	}
	return nil
}

// Clone returns a deep copy of the snapshot. Renderers work on clones so
// they can never mutate live state.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Groups:      make([]*Group, len(s.Groups)),
		CurrentUser: s.CurrentUser,
	}
	for i, g := range s.Groups {
		cp := *g
		cp.Members = append([]User(nil), g.Members...)
		cp.Posts = append([]Post(nil), g.Posts...)
		out.Groups[i] = &cp
	}
	return out
}
