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

// CreateFlagCommand creates a flag, or overwrites and resurrects an
// existing one with the same name. ActorID records who made the change.
type CreateFlagCommand struct {
	Name       string
	IsActive   bool
	Groups     []string
	Version    *int
	Comment    string
	TTLDays    int
	JiraTicket string
	ActorID    uint
}

type CreateFlagExecutor interface {
	Execute(ctx context.Context, cmd CreateFlagCommand) (*dto.FlagResponse, error)
}

type CreateFlagUseCase struct {
	flagRepo       flag.Repository
	historyRepo    flag.HistoryRepository
	defaultTTLDays int
	logger         logger.Interface
}

func NewCreateFlagUseCase(
	flagRepo flag.Repository,
	historyRepo flag.HistoryRepository,
	defaultTTLDays int,
	logger logger.Interface,
) *CreateFlagUseCase {
	return &CreateFlagUseCase{
		flagRepo:       flagRepo,
		historyRepo:    historyRepo,
		defaultTTLDays: defaultTTLDays,
		logger:         logger,
	}
}

func (uc *CreateFlagUseCase) Execute(ctx context.Context, cmd CreateFlagCommand) (*dto.FlagResponse, error) {
	ttlDays := cmd.TTLDays
	if ttlDays <= 0 {
		ttlDays = uc.defaultTTLDays
	}

	existing, err := uc.flagRepo.FindByName(ctx, cmd.Name)
	if err != nil && !stderrors.Is(err, flag.ErrFlagNotFound) {
		uc.logger.Errorw("failed to look up flag by name", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to look up flag")
	}

	if existing != nil {
		return uc.overwrite(ctx, existing, cmd, ttlDays)
	}

	newFlag, err := flag.NewFlag(cmd.Name, cmd.IsActive, cmd.Groups, cmd.Version, cmd.Comment, ttlDays, cmd.JiraTicket)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.flagRepo.Create(ctx, newFlag); err != nil {
		if stderrors.Is(err, flag.ErrFlagAlreadyExists) {
			return nil, errors.NewConflictError("flag with this name already exists")
		}
		uc.logger.Errorw("failed to create flag", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to create flag")
	}

	uc.logger.Infow("flag created", "flag_id", newFlag.ID(), "name", newFlag.Name())

	response := dto.ToFlagResponse(newFlag, time.Now())
	return &response, nil
}

// overwrite replaces every mutable field of an existing flag under the
// requested name, clears its scheduled expiry, and records the activity
// value in the history.
func (uc *CreateFlagUseCase) overwrite(ctx context.Context, existing *flag.Flag, cmd CreateFlagCommand, ttlDays int) (*dto.FlagResponse, error) {
	isActive := cmd.IsActive
	comment := cmd.Comment
	jiraTicket := cmd.JiraTicket
	params := flag.UpdateParams{
		IsActive:     &isActive,
		Groups:       cmd.Groups,
		Version:      cmd.Version,
		ClearVersion: cmd.Version == nil,
		Comment:      &comment,
		TTLDays:      &ttlDays,
		JiraTicket:   &jiraTicket,
	}

	if _, err := existing.Update(params); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	existing.Resurrect()

	if err := uc.flagRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to overwrite flag", "flag_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update flag")
	}

	entry := flag.NewHistoryEntry(existing.ID(), cmd.ActorID, existing.IsActive())
	if err := uc.historyRepo.Append(ctx, entry); err != nil {
		uc.logger.Warnw("failed to append flag history", "flag_id", existing.ID(), "error", err)
	}

	uc.logger.Infow("flag overwritten", "flag_id", existing.ID(), "name", existing.Name())

	response := dto.ToFlagResponse(existing, time.Now())
	return &response, nil
}
