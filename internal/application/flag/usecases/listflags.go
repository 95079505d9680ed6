package usecases

import (
	"context"
	"time"

	"switchboard/internal/application/flag/dto"
	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// ListFlagsQuery filters the admin listing. Group narrows to one group,
// ShowHidden includes flags past their scheduled expiry.
type ListFlagsQuery struct {
	Group      string
	ShowHidden bool
}

type ListFlagsExecutor interface {
	Execute(ctx context.Context, query ListFlagsQuery) (*dto.FlagListResponse, error)
}

type ListFlagsUseCase struct {
	flagRepo flag.Repository
	logger   logger.Interface
}

func NewListFlagsUseCase(flagRepo flag.Repository, logger logger.Interface) *ListFlagsUseCase {
	return &ListFlagsUseCase{flagRepo: flagRepo, logger: logger}
}

func (uc *ListFlagsUseCase) Execute(ctx context.Context, query ListFlagsQuery) (*dto.FlagListResponse, error) {
	listQuery := flag.ListQuery{ShowHidden: query.ShowHidden}
	if query.Group != "" {
		group := query.Group
		listQuery.Group = &group
	}

	flags, err := uc.flagRepo.List(ctx, listQuery)
	if err != nil {
		uc.logger.Errorw("failed to list flags", "error", err)
		return nil, errors.NewInternalError("failed to list flags")
	}

	groups, err := uc.flagRepo.DistinctGroups(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load distinct groups", "error", err)
		return nil, errors.NewInternalError("failed to load groups")
	}

	now := time.Now()
	return &dto.FlagListResponse{
		Count:  len(flags),
		Result: dto.ToFlagResponseList(flags, now),
		Groups: groups,
	}, nil
}
