// Package user holds the admin user entity and the per-flag edit
// assignments that gate non-superuser access.
package user

import (
	"strings"
	"time"
)

// User is an admin account. Non-superusers may only edit flags explicitly
// assigned to them; disabled users cannot log in.
type User struct {
	id           uint
	login        string
	passwordHash string
	isSuperuser  bool
	disabled     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser builds an enabled user with the given bcrypt hash.
func NewUser(login, passwordHash string, isSuperuser bool) (*User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, ErrEmptyLogin
	}
	if passwordHash == "" {
		return nil, ErrEmptyPasswordHash
	}
	now := time.Now().UTC()
	return &User{
		login:        login,
		passwordHash: passwordHash,
		isSuperuser:  isSuperuser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a user from the persistence layer.
func Reconstruct(id uint, login, passwordHash string, isSuperuser, disabled bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		login:        login,
		passwordHash: passwordHash,
		isSuperuser:  isSuperuser,
		disabled:     disabled,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) Login() string        { return u.login }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) IsSuperuser() bool    { return u.isSuperuser }
func (u *User) Disabled() bool       { return u.disabled }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID is for the persistence layer after insert.
func (u *User) SetID(id uint) { u.id = id }

// SetSuperuser toggles the superuser bit.
func (u *User) SetSuperuser(isSuperuser bool) {
	u.isSuperuser = isSuperuser
	u.updatedAt = time.Now().UTC()
}

// SetDisabled blocks or unblocks the account from logging in.
func (u *User) SetDisabled(disabled bool) {
	u.disabled = disabled
	u.updatedAt = time.Now().UTC()
}

// SetPasswordHash replaces the stored credential hash.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return ErrEmptyPasswordHash
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// CanLogin reports whether the account accepts logins.
func (u *User) CanLogin() bool { return !u.disabled }
