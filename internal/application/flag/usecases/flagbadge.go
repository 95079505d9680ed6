package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/badge"
	"switchboard/internal/shared/config"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// FlagBadgeQuery renders the status badge for one flag. Hostname is the
// serving host, shown in the badge label so embedded badges identify which
// deployment they report on.
type FlagBadgeQuery struct {
	FlagID   uint
	Hostname string
}

type FlagBadgeExecutor interface {
	Execute(ctx context.Context, query FlagBadgeQuery) (string, error)
}

// FlagBadgeUseCase renders flat SVG status badges. An unknown flag ID
// yields a dedicated "not found" badge rather than an error, so embedded
// badges never break after a flag is removed.
type FlagBadgeUseCase struct {
	flagRepo flag.Repository
	cfg      config.BadgeConfig
	logger   logger.Interface
}

func NewFlagBadgeUseCase(flagRepo flag.Repository, cfg config.BadgeConfig, logger logger.Interface) *FlagBadgeUseCase {
	return &FlagBadgeUseCase{flagRepo: flagRepo, cfg: cfg, logger: logger}
}

func (uc *FlagBadgeUseCase) Execute(ctx context.Context, query FlagBadgeQuery) (string, error) {
	f, err := uc.flagRepo.FindByID(ctx, query.FlagID)
	if err != nil {
		if stderrors.Is(err, flag.ErrFlagNotFound) {
			label := fmt.Sprintf("%s %s", uc.cfg.NotFoundPrefix, query.Hostname)
			return badge.Render(label, "not found", uc.cfg.BackgroundColor), nil
		}
		uc.logger.Errorw("failed to get flag for badge", "flag_id", query.FlagID, "error", err)
		return "", errors.NewInternalError("failed to get flag")
	}

	prefix, value := uc.prefixAndValue(f)
	label := fmt.Sprintf("%s %s", prefix, query.Hostname)
	return badge.Render(label, value, uc.cfg.BackgroundColor), nil
}

func (uc *FlagBadgeUseCase) prefixAndValue(f *flag.Flag) (string, string) {
	switch f.State(time.Now()) {
	case flag.StateHidden:
		return uc.cfg.HiddenPrefix, f.Name() + " (deleted)"
	case flag.StatePendingHide:
		return uc.cfg.HiddenPrefix, f.Name() + " (hidden)"
	default:
		if f.IsActive() {
			return uc.cfg.ActivePrefix, f.Name()
		}
		return uc.cfg.InactivePrefix, f.Name()
	}
}
