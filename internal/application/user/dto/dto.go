package dto

import (
	"time"

	"switchboard/internal/domain/user"
)

// UserResponse is the admin-facing representation of an account.
// FlagIDs lists the flags the user may edit; superusers may edit all.
type UserResponse struct {
	ID          uint      `json:"id"`
	Login       string    `json:"login"`
	IsSuperuser bool      `json:"is_superuser"`
	Disabled    bool      `json:"disabled"`
	FlagIDs     []uint    `json:"flag_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserListResponse is the users listing.
type UserListResponse struct {
	Count  int            `json:"count"`
	Result []UserResponse `json:"result"`
}

// LoginRequest is the credential payload.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Login       string    `json:"login"`
	IsSuperuser bool      `json:"is_superuser"`
}

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Login       string `json:"login" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	IsSuperuser bool   `json:"is_superuser"`
	FlagIDs     []uint `json:"flag_ids"`
}

// UpdateUserRequest patches an account; nil fields are left untouched.
// FlagIDs, when present, replaces the full assignment set.
type UpdateUserRequest struct {
	Password    *string `json:"password"`
	IsSuperuser *bool   `json:"is_superuser"`
	Disabled    *bool   `json:"disabled"`
	FlagIDs     []uint  `json:"flag_ids"`
}

// ToUserResponse converts a domain user and its flag assignments.
func ToUserResponse(u *user.User, flagIDs []uint) UserResponse {
	if flagIDs == nil {
		flagIDs = []uint{}
	}
	return UserResponse{
		ID:          u.ID(),
		Login:       u.Login(),
		IsSuperuser: u.IsSuperuser(),
		Disabled:    u.Disabled(),
		FlagIDs:     flagIDs,
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}
