package usecases

import (
	"context"
	stderrors "errors"

	"switchboard/internal/application/user/dto"
	"switchboard/internal/domain/user"
	"switchboard/internal/infrastructure/auth"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// UpdateUserCommand patches an account. Nil fields are left untouched;
// FlagIDs, when non-nil, replaces the full assignment set.
type UpdateUserCommand struct {
	UserID      uint
	Password    *string
	IsSuperuser *bool
	Disabled    *bool
	FlagIDs     []uint
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserResponse, error)
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   *auth.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher *auth.PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserResponse, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	if cmd.Password != nil {
		if len(*cmd.Password) < 8 {
			return nil, errors.NewValidationError("password must be at least 8 characters")
		}
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.SetPasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.IsSuperuser != nil {
		u.SetSuperuser(*cmd.IsSuperuser)
	}
	if cmd.Disabled != nil {
		u.SetDisabled(*cmd.Disabled)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update user")
	}

	if cmd.FlagIDs != nil {
		if err := uc.userRepo.ReplaceAssignments(ctx, u.ID(), cmd.FlagIDs); err != nil {
			uc.logger.Errorw("failed to replace flag assignments", "user_id", u.ID(), "error", err)
			return nil, errors.NewInternalError("failed to replace flag assignments")
		}
	}

	flagIDs, err := uc.userRepo.AssignedFlagIDs(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to load flag assignments", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load flag assignments")
	}

	uc.logger.Infow("user updated", "user_id", u.ID(), "login", u.Login())

	response := dto.ToUserResponse(u, flagIDs)
	return &response, nil
}
