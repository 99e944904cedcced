package models

// Habit represents an active user-defined habit. The identifier is stable
// across renames and survives soft deletion.
type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at"` // RFC3339-like timestamp from the store
}

// HabitRecord is the read path for history views: every habit ever created,
// active or soft-deleted. Callers that ask for deleted habits get the
// deletion marker back and have to deal with it.
type HabitRecord struct {
	Habit
	DeletedAt *string `json:"deleted_at,omitempty"`
}

// Deleted reports whether the habit has been soft-deleted.
func (r HabitRecord) Deleted() bool {
	return r.DeletedAt != nil
}

// HabitPatch is a partial update: nil fields are left untouched.
type HabitPatch struct {
	Name      *string
	Emoji     *string
	SortOrder *int
}
