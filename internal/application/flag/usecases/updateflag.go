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

// UpdateFlagCommand applies a partial patch to a flag. Nil fields are
// left untouched. A history entry is recorded whenever the patch touches
// the activity bit, even when the value does not change.
type UpdateFlagCommand struct {
	FlagID       uint
	IsActive     *bool
	Groups       []string
	Version      *int
	ClearVersion bool
	Comment      *string
	TTLDays      *int
	JiraTicket   *string
	ActorID      uint
}

type UpdateFlagExecutor interface {
	Execute(ctx context.Context, cmd UpdateFlagCommand) (*dto.FlagResponse, error)
}

type UpdateFlagUseCase struct {
	flagRepo    flag.Repository
	historyRepo flag.HistoryRepository
	logger      logger.Interface
}

func NewUpdateFlagUseCase(
	flagRepo flag.Repository,
	historyRepo flag.HistoryRepository,
	logger logger.Interface,
) *UpdateFlagUseCase {
	return &UpdateFlagUseCase{flagRepo: flagRepo, historyRepo: historyRepo, logger: logger}
}

func (uc *UpdateFlagUseCase) Execute(ctx context.Context, cmd UpdateFlagCommand) (*dto.FlagResponse, error) {
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

	activityTouched, err := f.Update(flag.UpdateParams{
		IsActive:     cmd.IsActive,
		Groups:       cmd.Groups,
		Version:      cmd.Version,
		ClearVersion: cmd.ClearVersion,
		Comment:      cmd.Comment,
		TTLDays:      cmd.TTLDays,
		JiraTicket:   cmd.JiraTicket,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.flagRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update flag", "flag_id", cmd.FlagID, "error", err)
		return nil, errors.NewInternalError("failed to update flag")
	}

	if activityTouched {
		entry := flag.NewHistoryEntry(f.ID(), cmd.ActorID, f.IsActive())
		if err := uc.historyRepo.Append(ctx, entry); err != nil {
			uc.logger.Warnw("failed to append flag history", "flag_id", f.ID(), "error", err)
		}
	}

	uc.logger.Infow("flag updated", "flag_id", f.ID(), "name", f.Name())

	response := dto.ToFlagResponse(f, time.Now())
	return &response, nil
}
