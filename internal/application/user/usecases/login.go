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

type LoginCommand struct {
	Login    string
	Password string
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error)
}

// LoginUseCase verifies credentials and issues a signed access token. A
// missing account and a wrong password produce the same error, so probing
// for valid logins is not possible.
type LoginUseCase struct {
	userRepo user.Repository
	hasher   *auth.PasswordHasher
	jwt      *auth.JWTService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher *auth.PasswordHasher,
	jwt *auth.JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, jwt: jwt, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	if cmd.Login == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("login and password are required")
	}

	u, err := uc.userRepo.FindByLogin(ctx, cmd.Login)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil, errors.NewUnauthorizedError("invalid login or password")
		}
		uc.logger.Errorw("failed to get user by login", "error", err)
		return nil, errors.NewInternalError("failed to get user")
	}

	if !u.CanLogin() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if !uc.hasher.Verify(u.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("failed login attempt", "login", cmd.Login)
		return nil, errors.NewUnauthorizedError("invalid login or password")
	}

	token, expiresAt, err := uc.jwt.Sign(u.ID(), u.Login(), u.IsSuperuser())
	if err != nil {
		uc.logger.Errorw("failed to sign access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "login", u.Login())

	return &dto.LoginResponse{
		Token:       token,
		ExpiresAt:   expiresAt,
		Login:       u.Login(),
		IsSuperuser: u.IsSuperuser(),
	}, nil
}
