package usecases

import (
	"context"

	"switchboard/internal/application/user/dto"
	"switchboard/internal/domain/user"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

type ListUsersExecutor interface {
	Execute(ctx context.Context) (*dto.UserListResponse, error)
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		flagIDs, err := uc.userRepo.AssignedFlagIDs(ctx, u.ID())
		if err != nil {
			uc.logger.Errorw("failed to load flag assignments", "user_id", u.ID(), "error", err)
			return nil, errors.NewInternalError("failed to load flag assignments")
		}
		result = append(result, dto.ToUserResponse(u, flagIDs))
	}

	return &dto.UserListResponse{Count: len(result), Result: result}, nil
}
