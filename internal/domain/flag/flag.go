// Package flag holds the switch aggregate: the flag entity itself, its
// soft-delete lifecycle, the evaluation query and the repository contracts.
package flag

import (
	"fmt"
	"strings"
	"time"
)

// State describes where a flag sits in the soft-delete lifecycle.
type State string

const (
	// StateLive means deleted_at is unset; the flag is fully visible.
	StateLive State = "live"
	// StatePendingHide means deletion is scheduled but the expiry moment
	// has not passed; the flag still shows up in default listings.
	StatePendingHide State = "pending_hide"
	// StateHidden means the expiry moment has passed.
	StateHidden State = "hidden"
)

// Flag is a named feature switch scoped to one or more groups. Deleting a
// flag never removes its row; it schedules deleted_at = now + ttl days and
// the flag disappears from default listings once that moment passes.
type Flag struct {
	id         uint
	name       string
	isActive   bool
	groups     []string
	version    *int
	comment    string
	ttlDays    int
	jiraTicket string
	createdAt  time.Time
	updatedAt  time.Time
	deletedAt  *time.Time
}

// NewFlag validates input and builds a live flag. The name is
// whitespace-trimmed; empty names, empty group sets and non-positive TTLs
// are rejected as a whole (no partial construction).
func NewFlag(name string, isActive bool, groups []string, version *int, comment string, ttlDays int, jiraTicket string) (*Flag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	cleaned := normalizeGroups(groups)
	if len(cleaned) == 0 {
		return nil, ErrEmptyGroups
	}
	if ttlDays <= 0 {
		return nil, ErrInvalidTTL
	}

	now := time.Now().UTC()
	return &Flag{
		name:       name,
		isActive:   isActive,
		groups:     cleaned,
		version:    version,
		comment:    comment,
		ttlDays:    ttlDays,
		jiraTicket: jiraTicket,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// Reconstruct rebuilds a flag from the persistence layer without validation.
func Reconstruct(
	id uint,
	name string,
	isActive bool,
	groups []string,
	version *int,
	comment string,
	ttlDays int,
	jiraTicket string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Flag {
	return &Flag{
		id:         id,
		name:       name,
		isActive:   isActive,
		groups:     groups,
		version:    version,
		comment:    comment,
		ttlDays:    ttlDays,
		jiraTicket: jiraTicket,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		deletedAt:  deletedAt,
	}
}

func (f *Flag) ID() uint              { return f.id }
func (f *Flag) Name() string          { return f.name }
func (f *Flag) IsActive() bool        { return f.isActive }
func (f *Flag) Groups() []string      { return f.groups }
func (f *Flag) Version() *int         { return f.version }
func (f *Flag) Comment() string       { return f.comment }
func (f *Flag) TTLDays() int          { return f.ttlDays }
func (f *Flag) JiraTicket() string    { return f.jiraTicket }
func (f *Flag) CreatedAt() time.Time  { return f.createdAt }
func (f *Flag) UpdatedAt() time.Time  { return f.updatedAt }
func (f *Flag) DeletedAt() *time.Time { return f.deletedAt }

// SetID is for the persistence layer after insert.
func (f *Flag) SetID(id uint) { f.id = id }

// HasGroup reports literal membership; the empty string is an ordinary
// member, not a wildcard.
func (f *Flag) HasGroup(group string) bool {
	for _, g := range f.groups {
		if g == group {
			return true
		}
	}
	return false
}

// State reports the lifecycle state at the given instant.
func (f *Flag) State(now time.Time) State {
	switch {
	case f.deletedAt == nil:
		return StateLive
	case f.deletedAt.After(now):
		return StatePendingHide
	default:
		return StateHidden
	}
}

// IsHidden reports whether the flag has passed its scheduled expiry.
func (f *Flag) IsHidden(now time.Time) bool {
	return f.deletedAt != nil && !f.deletedAt.After(now)
}

// UpdateParams carries a field-wise patch for Update. Nil pointers leave the
// field untouched. ClearVersion removes the version gate entirely.
type UpdateParams struct {
	IsActive     *bool
	Groups       []string
	Version      *int
	ClearVersion bool
	Comment      *string
	TTLDays      *int
	JiraTicket   *string
}

// Update validates and applies a patch. It reports whether is_active was
// among the changed fields; the caller appends exactly one history row when
// it was, even if the value did not differ. The whole patch is rejected on
// the first invalid field.
func (f *Flag) Update(params UpdateParams) (isActiveTouched bool, err error) {
	if params.Groups != nil {
		cleaned := normalizeGroups(params.Groups)
		if len(cleaned) == 0 {
			return false, ErrEmptyGroups
		}
		params.Groups = cleaned
	}
	if params.TTLDays != nil && *params.TTLDays <= 0 {
		return false, ErrInvalidTTL
	}

	if params.IsActive != nil {
		f.isActive = *params.IsActive
		isActiveTouched = true
	}
	if params.Groups != nil {
		f.groups = params.Groups
	}
	if params.ClearVersion {
		f.version = nil
	} else if params.Version != nil {
		f.version = params.Version
	}
	if params.Comment != nil {
		f.comment = *params.Comment
	}
	if params.TTLDays != nil {
		f.ttlDays = *params.TTLDays
	}
	if params.JiraTicket != nil {
		f.jiraTicket = *params.JiraTicket
	}
	f.updatedAt = time.Now().UTC()
	return isActiveTouched, nil
}

// SoftDelete schedules the flag to disappear ttl days from now. It stays in
// default listings until that moment.
func (f *Flag) SoftDelete(now time.Time) {
	expiry := now.UTC().Add(time.Duration(f.ttlDays) * 24 * time.Hour)
	f.deletedAt = &expiry
	f.updatedAt = now.UTC()
}

// Resurrect clears any scheduled or past deletion, returning the flag to
// the live state.
func (f *Flag) Resurrect() {
	f.deletedAt = nil
	f.updatedAt = time.Now().UTC()
}

// ExpiresAt returns the moment an active flag is considered stale
// (updated_at + ttl days), shown in the admin listing as a cleanup nudge.
// Inactive flags have no expiry annotation.
func (f *Flag) ExpiresAt() *time.Time {
	if !f.isActive {
		return nil
	}
	t := f.updatedAt.Add(time.Duration(f.ttlDays) * 24 * time.Hour)
	return &t
}

func normalizeGroups(groups []string) []string {
	cleaned := make([]string, 0, len(groups))
	for _, g := range groups {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		cleaned = append(cleaned, g)
	}
	return cleaned
}

func (f *Flag) String() string {
	return fmt.Sprintf("Flag(%d, %q)", f.id, f.name)
}
