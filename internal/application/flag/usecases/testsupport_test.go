package usecases

import (
	"context"
	"sort"
	"time"

	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// fakeFlagRepo is an in-memory flag.Repository.
type fakeFlagRepo struct {
	flags  map[uint]*flag.Flag
	nextID uint
	err    error
}

func newFakeFlagRepo() *fakeFlagRepo {
	return &fakeFlagRepo{flags: make(map[uint]*flag.Flag), nextID: 1}
}

func (r *fakeFlagRepo) Create(ctx context.Context, f *flag.Flag) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.flags {
		if existing.Name() == f.Name() {
			return flag.ErrFlagAlreadyExists
		}
	}
	f.SetID(r.nextID)
	r.nextID++
	r.flags[f.ID()] = f
	return nil
}

func (r *fakeFlagRepo) Update(ctx context.Context, f *flag.Flag) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.flags[f.ID()]; !ok {
		return flag.ErrFlagNotFound
	}
	r.flags[f.ID()] = f
	return nil
}

func (r *fakeFlagRepo) FindByID(ctx context.Context, id uint) (*flag.Flag, error) {
	if r.err != nil {
		return nil, r.err
	}
	f, ok := r.flags[id]
	if !ok {
		return nil, flag.ErrFlagNotFound
	}
	return f, nil
}

func (r *fakeFlagRepo) FindByName(ctx context.Context, name string) (*flag.Flag, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, f := range r.flags {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, flag.ErrFlagNotFound
}

func (r *fakeFlagRepo) List(ctx context.Context, query flag.ListQuery) ([]*flag.Flag, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := make([]*flag.Flag, 0, len(r.flags))
	for _, f := range r.flags {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return query.Filter(all, time.Now()), nil
}

func (r *fakeFlagRepo) DistinctGroups(ctx context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	set := make(map[string]struct{})
	now := time.Now()
	for _, f := range r.flags {
		if f.IsHidden(now) {
			continue
		}
		for _, g := range f.Groups() {
			set[g] = struct{}{}
		}
	}
	groups := make([]string, 0, len(set))
	for g := range set {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups, nil
}

// fakeHistoryRepo is an in-memory flag.HistoryRepository.
type fakeHistoryRepo struct {
	entries []*flag.HistoryEntry
	nextID  uint
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1}
}

func (r *fakeHistoryRepo) Append(ctx context.Context, e *flag.HistoryEntry) error {
	e.SetID(r.nextID)
	r.nextID++
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeHistoryRepo) ListByFlag(ctx context.Context, flagID uint) ([]*flag.HistoryEntry, error) {
	var out []*flag.HistoryEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].FlagID() == flagID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
