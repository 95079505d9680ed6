package usecases

import (
	"context"

	"switchboard/internal/domain/user"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// AuthorizeFlagEditQuery asks whether the user may mutate the given flag.
type AuthorizeFlagEditQuery struct {
	UserID      uint
	IsSuperuser bool
	FlagID      uint
}

type AuthorizeFlagEditExecutor interface {
	Execute(ctx context.Context, query AuthorizeFlagEditQuery) error
}

// AuthorizeFlagEditUseCase enforces per-flag edit permissions. Superusers
// may edit any flag; everyone else only flags assigned to them.
type AuthorizeFlagEditUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewAuthorizeFlagEditUseCase(userRepo user.Repository, logger logger.Interface) *AuthorizeFlagEditUseCase {
	return &AuthorizeFlagEditUseCase{userRepo: userRepo, logger: logger}
}

func (uc *AuthorizeFlagEditUseCase) Execute(ctx context.Context, query AuthorizeFlagEditQuery) error {
	if query.IsSuperuser {
		return nil
	}

	flagIDs, err := uc.userRepo.AssignedFlagIDs(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load flag assignments", "user_id", query.UserID, "error", err)
		return errors.NewInternalError("failed to load flag assignments")
	}

	for _, id := range flagIDs {
		if id == query.FlagID {
			return nil
		}
	}
	return errors.NewForbiddenError("no permission to edit this flag")
}
