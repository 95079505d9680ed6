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

type CreateUserCommand struct {
	Login       string
	Password    string
	IsSuperuser bool
	FlagIDs     []uint
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserResponse, error)
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   *auth.PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher *auth.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserResponse, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Login, hash, cmd.IsSuperuser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if stderrors.Is(err, user.ErrUserAlreadyExists) {
			return nil, errors.NewConflictError("user with this login already exists")
		}
		uc.logger.Errorw("failed to create user", "login", cmd.Login, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	if len(cmd.FlagIDs) > 0 {
		if err := uc.userRepo.ReplaceAssignments(ctx, u.ID(), cmd.FlagIDs); err != nil {
			uc.logger.Errorw("failed to assign flags", "user_id", u.ID(), "error", err)
			return nil, errors.NewInternalError("failed to assign flags")
		}
	}

	uc.logger.Infow("user created", "user_id", u.ID(), "login", u.Login())

	response := dto.ToUserResponse(u, cmd.FlagIDs)
	return &response, nil
}
