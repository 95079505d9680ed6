package user

import "context"

// Repository is the persistence contract for admin users and their flag
// assignments.
type Repository interface {
	// Create inserts a new user and assigns its ID.
	Create(ctx context.Context, u *User) error

	// Update persists mutable fields of an existing user.
	Update(ctx context.Context, u *User) error

	// FindByID returns the user or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByLogin returns the user or ErrUserNotFound.
	FindByLogin(ctx context.Context, login string) (*User, error)

	// List returns all users ordered by login.
	List(ctx context.Context) ([]*User, error)

	// AssignedFlagIDs returns the ids of flags the user may edit.
	AssignedFlagIDs(ctx context.Context, userID uint) ([]uint, error)

	// ReplaceAssignments swaps the user's flag assignments for the given
	// set, deduplicated by the unique (user_id, switch_id) pair.
	ReplaceAssignments(ctx context.Context, userID uint, flagIDs []uint) error
}
