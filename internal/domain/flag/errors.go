package flag

import "errors"

var (
	// ErrFlagNotFound is returned when a flag id or name does not exist.
	ErrFlagNotFound = errors.New("flag not found")

	// ErrFlagAlreadyExists is returned on a name-uniqueness violation at
	// create time.
	ErrFlagAlreadyExists = errors.New("flag already exists")

	// ErrEmptyName rejects names that are empty after trimming.
	ErrEmptyName = errors.New("flag name must not be empty")

	// ErrEmptyGroups rejects flags without at least one group.
	ErrEmptyGroups = errors.New("flag must belong to at least one group")

	// ErrInvalidTTL rejects non-positive TTLs.
	ErrInvalidTTL = errors.New("flag ttl must be a positive number of days")
)
