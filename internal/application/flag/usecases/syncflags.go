package usecases

import (
	"context"
	stderrors "errors"

	"switchboard/internal/application/flag/dto"
	"switchboard/internal/domain/flag"
	syncclient "switchboard/internal/infrastructure/sync"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// SyncFlagsCommand imports the flag snapshot from the configured remote
// instance. UpdateExisting controls whether flags already present locally
// are overwritten or skipped.
type SyncFlagsCommand struct {
	UpdateExisting bool
	ActorID        uint
}

type SyncFlagsExecutor interface {
	Execute(ctx context.Context, cmd SyncFlagsCommand) (*dto.SyncResponse, error)
}

// SyncFlagsUseCase copies flags from a remote deployment. The snapshot is
// fetched in full before any local write, so an unreachable remote leaves
// the local set untouched. Per-item failures do not abort the run.
type SyncFlagsUseCase struct {
	flagRepo       flag.Repository
	client         *syncclient.Client
	defaultTTLDays int
	logger         logger.Interface
}

func NewSyncFlagsUseCase(
	flagRepo flag.Repository,
	client *syncclient.Client,
	defaultTTLDays int,
	logger logger.Interface,
) *SyncFlagsUseCase {
	return &SyncFlagsUseCase{
		flagRepo:       flagRepo,
		client:         client,
		defaultTTLDays: defaultTTLDays,
		logger:         logger,
	}
}

func (uc *SyncFlagsUseCase) Execute(ctx context.Context, cmd SyncFlagsCommand) (*dto.SyncResponse, error) {
	if !uc.client.Configured() {
		return nil, errors.NewValidationError("sync source is not configured")
	}

	snapshot, err := uc.client.FetchSnapshot(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch remote snapshot", "error", err)
		return nil, err
	}

	response := &dto.SyncResponse{Total: len(snapshot)}
	for _, item := range snapshot {
		result := uc.importItem(ctx, item, cmd.UpdateExisting)
		response.Items = append(response.Items, result)
		switch result.Outcome {
		case "created":
			response.Created++
		case "updated":
			response.Updated++
		case "skipped":
			response.Skipped++
		default:
			response.Failed++
		}
	}

	uc.logger.Infow("flag sync finished",
		"total", response.Total,
		"created", response.Created,
		"updated", response.Updated,
		"skipped", response.Skipped,
		"failed", response.Failed,
	)
	return response, nil
}

func (uc *SyncFlagsUseCase) importItem(ctx context.Context, item syncclient.SnapshotItem, updateExisting bool) dto.SyncResultItem {
	ttlDays := item.TTLDays
	if ttlDays <= 0 {
		ttlDays = uc.defaultTTLDays
	}

	newFlag, err := flag.NewFlag(item.Name, item.IsActive, item.Groups, item.Version, item.Comment, ttlDays, "")
	if err != nil {
		return dto.SyncResultItem{Name: item.Name, Outcome: "failed", Error: err.Error()}
	}

	err = uc.flagRepo.Create(ctx, newFlag)
	if err == nil {
		return dto.SyncResultItem{Name: item.Name, Outcome: "created"}
	}
	if !stderrors.Is(err, flag.ErrFlagAlreadyExists) {
		uc.logger.Warnw("failed to import flag", "name", item.Name, "error", err)
		return dto.SyncResultItem{Name: item.Name, Outcome: "failed", Error: "failed to create flag"}
	}

	if !updateExisting {
		return dto.SyncResultItem{Name: item.Name, Outcome: "skipped"}
	}
	return uc.updateExisting(ctx, item, ttlDays)
}

// updateExisting overwrites a local flag with the remote values. The
// remote's own timestamps are never applied.
func (uc *SyncFlagsUseCase) updateExisting(ctx context.Context, item syncclient.SnapshotItem, ttlDays int) dto.SyncResultItem {
	existing, err := uc.flagRepo.FindByName(ctx, item.Name)
	if err != nil {
		uc.logger.Warnw("failed to load flag for sync update", "name", item.Name, "error", err)
		return dto.SyncResultItem{Name: item.Name, Outcome: "failed", Error: "failed to load flag"}
	}

	isActive := item.IsActive
	comment := item.Comment
	if _, err := existing.Update(flag.UpdateParams{
		IsActive:     &isActive,
		Groups:       item.Groups,
		Version:      item.Version,
		ClearVersion: item.Version == nil,
		Comment:      &comment,
		TTLDays:      &ttlDays,
	}); err != nil {
		return dto.SyncResultItem{Name: item.Name, Outcome: "failed", Error: err.Error()}
	}

	if err := uc.flagRepo.Update(ctx, existing); err != nil {
		uc.logger.Warnw("failed to update flag during sync", "name", item.Name, "error", err)
		return dto.SyncResultItem{Name: item.Name, Outcome: "failed", Error: "failed to update flag"}
	}
	return dto.SyncResultItem{Name: item.Name, Outcome: "updated"}
}
