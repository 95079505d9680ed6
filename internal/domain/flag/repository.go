package flag

import "context"

// Repository is the persistence contract for flags. Create must fail with
// ErrFlagAlreadyExists on a name collision rather than overwrite; the
// resurrection flow is implemented above this interface.
type Repository interface {
	// Create inserts a new flag and assigns its ID.
	Create(ctx context.Context, f *Flag) error

	// Update persists all mutable fields of an existing flag.
	Update(ctx context.Context, f *Flag) error

	// FindByID returns the flag or ErrFlagNotFound.
	FindByID(ctx context.Context, id uint) (*Flag, error)

	// FindByName returns the flag in any lifecycle state, or
	// ErrFlagNotFound. Used by the resurrection and sync flows.
	FindByName(ctx context.Context, name string) (*Flag, error)

	// List returns flags matching the query, ordered by created_at
	// descending (the admin listing order). Evaluation callers re-sort by
	// name.
	List(ctx context.Context, query ListQuery) ([]*Flag, error)

	// DistinctGroups returns the sorted set of group names across
	// non-hidden flags.
	DistinctGroups(ctx context.Context) ([]string, error)
}

// HistoryRepository persists is_active transitions. Appends happen after
// the field write they describe, as a separate statement.
type HistoryRepository interface {
	// Append stores a new entry and assigns its ID.
	Append(ctx context.Context, entry *HistoryEntry) error

	// ListByFlag returns entries for a flag, changed_at descending.
	ListByFlag(ctx context.Context, flagID uint) ([]*HistoryEntry, error)
}
