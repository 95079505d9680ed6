package usecases

import (
	"context"
	"encoding/json"
	"time"

	"switchboard/internal/application/flag/dto"
	"switchboard/internal/domain/flag"
	"switchboard/internal/infrastructure/cache"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// EvaluateFlagsQuery is the validated public evaluation request. Group is
// always set by the handler; IsActive defaults to true when the caller
// omits it.
type EvaluateFlagsQuery struct {
	Group    string
	IsActive bool
	Version  *int
}

type EvaluateFlagsExecutor interface {
	Execute(ctx context.Context, query EvaluateFlagsQuery) ([]byte, error)
}

// EvaluateFlagsUseCase answers the hot-path evaluation request through a
// read-through response cache. The cached value is the serialized response
// body, so a cache hit skips both the database and the JSON encoder.
type EvaluateFlagsUseCase struct {
	flagRepo flag.Repository
	cache    *cache.ResponseCache
	cacheTTL time.Duration
	logger   logger.Interface
}

func NewEvaluateFlagsUseCase(
	flagRepo flag.Repository,
	responseCache *cache.ResponseCache,
	cacheTTL time.Duration,
	logger logger.Interface,
) *EvaluateFlagsUseCase {
	return &EvaluateFlagsUseCase{
		flagRepo: flagRepo,
		cache:    responseCache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (uc *EvaluateFlagsUseCase) Execute(ctx context.Context, query EvaluateFlagsQuery) ([]byte, error) {
	key := cache.EvaluationKey("switch", query.Group, query.Version, query.IsActive)

	return uc.cache.GetOrCompute(ctx, key, uc.cacheTTL, func(ctx context.Context) ([]byte, error) {
		group := query.Group
		isActive := query.IsActive
		flags, err := uc.flagRepo.List(ctx, flag.ListQuery{
			Group:    &group,
			IsActive: &isActive,
			Version:  query.Version,
		})
		if err != nil {
			uc.logger.Errorw("failed to list flags", "group", query.Group, "error", err)
			return nil, errors.NewInternalError("failed to list flags")
		}

		names := flag.SortedNames(flags)
		body, err := json.Marshal(dto.EvaluationResponse{Count: len(names), Result: names})
		if err != nil {
			return nil, errors.NewInternalError("failed to encode response")
		}
		return body, nil
	})
}
