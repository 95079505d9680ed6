package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// DeleteFlagCommand schedules a flag for hiding. The flag keeps serving
// until its per-flag TTL elapses.
type DeleteFlagCommand struct {
	FlagID uint
}

type DeleteFlagExecutor interface {
	Execute(ctx context.Context, cmd DeleteFlagCommand) error
}

type DeleteFlagUseCase struct {
	flagRepo flag.Repository
	logger   logger.Interface
}

func NewDeleteFlagUseCase(flagRepo flag.Repository, logger logger.Interface) *DeleteFlagUseCase {
	return &DeleteFlagUseCase{flagRepo: flagRepo, logger: logger}
}

func (uc *DeleteFlagUseCase) Execute(ctx context.Context, cmd DeleteFlagCommand) error {
	if cmd.FlagID == 0 {
		return errors.NewValidationError("flag ID is required")
	}

	f, err := uc.flagRepo.FindByID(ctx, cmd.FlagID)
	if err != nil {
		if stderrors.Is(err, flag.ErrFlagNotFound) {
			return errors.NewNotFoundError("flag not found")
		}
		uc.logger.Errorw("failed to get flag", "flag_id", cmd.FlagID, "error", err)
		return errors.NewInternalError("failed to get flag")
	}

	f.SoftDelete(time.Now())

	if err := uc.flagRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to delete flag", "flag_id", cmd.FlagID, "error", err)
		return errors.NewInternalError("failed to delete flag")
	}

	uc.logger.Infow("flag scheduled for hiding", "flag_id", f.ID(), "name", f.Name(), "hidden_at", f.DeletedAt())
	return nil
}
