package usecases

import (
	"context"
	stderrors "errors"

	"switchboard/internal/application/user/dto"
	"switchboard/internal/domain/user"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserResponse, error)
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserResponse, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	flagIDs, err := uc.userRepo.AssignedFlagIDs(ctx, u.ID())
	if err != nil {
		uc.logger.Errorw("failed to load flag assignments", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load flag assignments")
	}

	response := dto.ToUserResponse(u, flagIDs)
	return &response, nil
}
