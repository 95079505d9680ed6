package usecases

import (
	"context"
	"time"

	"switchboard/internal/application/flag/dto"
	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

type FullInfoExecutor interface {
	Execute(ctx context.Context) (*dto.FullInfoResponse, error)
}

// FullInfoUseCase returns full records for every flag that has not yet
// passed its scheduled expiry. The handler gates the endpoint behind
// configuration.
type FullInfoUseCase struct {
	flagRepo flag.Repository
	logger   logger.Interface
}

func NewFullInfoUseCase(flagRepo flag.Repository, logger logger.Interface) *FullInfoUseCase {
	return &FullInfoUseCase{flagRepo: flagRepo, logger: logger}
}

func (uc *FullInfoUseCase) Execute(ctx context.Context) (*dto.FullInfoResponse, error) {
	flags, err := uc.flagRepo.List(ctx, flag.ListQuery{})
	if err != nil {
		uc.logger.Errorw("failed to list flags", "error", err)
		return nil, errors.NewInternalError("failed to list flags")
	}

	now := time.Now()
	return &dto.FullInfoResponse{
		Count:  len(flags),
		Result: dto.ToFlagResponseList(flags, now),
	}, nil
}
