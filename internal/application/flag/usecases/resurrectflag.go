package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"switchboard/internal/application/flag/dto"
	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// ResurrectFlagCommand cancels a pending or completed hide, returning the
// flag to normal listings.
type ResurrectFlagCommand struct {
	FlagID uint
}

type ResurrectFlagExecutor interface {
	Execute(ctx context.Context, cmd ResurrectFlagCommand) (*dto.FlagResponse, error)
}

type ResurrectFlagUseCase struct {
	flagRepo flag.Repository
	logger   logger.Interface
}

func NewResurrectFlagUseCase(flagRepo flag.Repository, logger logger.Interface) *ResurrectFlagUseCase {
	return &ResurrectFlagUseCase{flagRepo: flagRepo, logger: logger}
}

func (uc *ResurrectFlagUseCase) Execute(ctx context.Context, cmd ResurrectFlagCommand) (*dto.FlagResponse, error) {
	if cmd.FlagID == 0 {
		return nil, errors.NewValidationError("flag ID is required")
	}

	f, err := uc.flagRepo.FindByID(ctx, cmd.FlagID)
	if err != nil {
		if stderrors.Is(err, flag.ErrFlagNotFound) {
			return nil, errors.NewNotFoundError("flag not found")
		}
		uc.logger.Errorw("failed to get flag", "flag_id", cmd.FlagID, "error", err)
		return nil, errors.NewInternalError("failed to get flag")
	}

	f.Resurrect()

	if err := uc.flagRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to resurrect flag", "flag_id", cmd.FlagID, "error", err)
		return nil, errors.NewInternalError("failed to resurrect flag")
	}

	uc.logger.Infow("flag resurrected", "flag_id", f.ID(), "name", f.Name())

	response := dto.ToFlagResponse(f, time.Now())
	return &response, nil
}
