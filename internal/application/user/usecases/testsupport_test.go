package usecases

import (
	"context"

	"switchboard/internal/domain/user"
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

// fakeUserRepo is an in-memory user.Repository.
type fakeUserRepo struct {
	users       map[uint]*user.User
	assignments map[uint][]uint
	nextID      uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:       make(map[uint]*user.User),
		assignments: make(map[uint][]uint),
		nextID:      1,
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Login() == u.Login() {
			return user.ErrUserAlreadyExists
		}
	}
	u.SetID(r.nextID)
	r.nextID++
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	if _, ok := r.users[u.ID()]; !ok {
		return user.ErrUserNotFound
	}
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	for _, u := range r.users {
		if u.Login() == login {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) AssignedFlagIDs(ctx context.Context, userID uint) ([]uint, error) {
	return r.assignments[userID], nil
}

func (r *fakeUserRepo) ReplaceAssignments(ctx context.Context, userID uint, flagIDs []uint) error {
	r.assignments[userID] = flagIDs
	return nil
}
