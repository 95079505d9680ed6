package flag

import (
	"sort"
	"time"
)

// ListQuery is the explicit predicate set for flag evaluation. Predicates
// combine conjunctively; there is no OR form and no scoring. Nil pointers
// mean the caller did not apply that predicate: the public endpoint always
// sets Group and IsActive (defaulting the latter to true), the admin
// listing sets them only when filtering. A pointer to the empty string is a
// literal membership test, not a wildcard.
type ListQuery struct {
	Group      *string
	IsActive   *bool
	Version    *int
	ShowHidden bool
}

// Matches reports whether the flag satisfies every predicate at the given
// instant:
//   - the query group, when set, is a member of the flag's groups
//   - the flag's activity, when queried, equals the queried activity
//   - the flag's version gate, when both sides are set, does not exceed the
//     queried version
//   - the flag is not past its scheduled expiry, unless ShowHidden
func (q ListQuery) Matches(f *Flag, now time.Time) bool {
	if q.Group != nil && !f.HasGroup(*q.Group) {
		return false
	}
	if q.IsActive != nil && f.IsActive() != *q.IsActive {
		return false
	}
	if q.Version != nil && f.Version() != nil && *f.Version() > *q.Version {
		return false
	}
	if !q.ShowHidden && f.IsHidden(now) {
		return false
	}
	return true
}

// Filter applies Matches over a slice, preserving input order.
func (q ListQuery) Filter(flags []*Flag, now time.Time) []*Flag {
	matched := make([]*Flag, 0, len(flags))
	for _, f := range flags {
		if q.Matches(f, now) {
			matched = append(matched, f)
		}
	}
	return matched
}

// SortedNames extracts flag names in ascending lexicographic order, the
// ordering the public evaluation endpoint guarantees.
func SortedNames(flags []*Flag) []string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}
