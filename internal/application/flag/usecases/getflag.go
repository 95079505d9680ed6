package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"switchboard/internal/application/flag/dto"
	"switchboard/internal/domain/flag"
	"switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/markdown"
)

// GetFlagQuery fetches one flag with its change history, the rendered
// comment, and a markdown badge snippet.
type GetFlagQuery struct {
	FlagID uint
}

type GetFlagExecutor interface {
	Execute(ctx context.Context, query GetFlagQuery) (*dto.FlagDetailResponse, error)
}

type GetFlagUseCase struct {
	flagRepo    flag.Repository
	historyRepo flag.HistoryRepository
	renderer    markdown.Renderer
	baseURL     string
	logger      logger.Interface
}

func NewGetFlagUseCase(
	flagRepo flag.Repository,
	historyRepo flag.HistoryRepository,
	renderer markdown.Renderer,
	baseURL string,
	logger logger.Interface,
) *GetFlagUseCase {
	return &GetFlagUseCase{
		flagRepo:    flagRepo,
		historyRepo: historyRepo,
		renderer:    renderer,
		baseURL:     baseURL,
		logger:      logger,
	}
}

func (uc *GetFlagUseCase) Execute(ctx context.Context, query GetFlagQuery) (*dto.FlagDetailResponse, error) {
	if query.FlagID == 0 {
		return nil, errors.NewValidationError("flag ID is required")
	}

	f, err := uc.flagRepo.FindByID(ctx, query.FlagID)
	if err != nil {
		if stderrors.Is(err, flag.ErrFlagNotFound) {
			return nil, errors.NewNotFoundError("flag not found")
		}
		uc.logger.Errorw("failed to get flag", "flag_id", query.FlagID, "error", err)
		return nil, errors.NewInternalError("failed to get flag")
	}

	history, err := uc.historyRepo.ListByFlag(ctx, f.ID())
	if err != nil {
		uc.logger.Errorw("failed to load flag history", "flag_id", f.ID(), "error", err)
		return nil, errors.NewInternalError("failed to load flag history")
	}

	commentHTML := ""
	if f.Comment() != "" {
		commentHTML, err = uc.renderer.RenderSanitized(f.Comment())
		if err != nil {
			uc.logger.Warnw("failed to render flag comment", "flag_id", f.ID(), "error", err)
			commentHTML = ""
		}
	}

	return &dto.FlagDetailResponse{
		FlagResponse: dto.ToFlagResponse(f, time.Now()),
		CommentHTML:  commentHTML,
		BadgeSnippet: uc.badgeSnippet(f),
		History:      dto.ToHistoryResponseList(history),
	}, nil
}

// badgeSnippet builds a ready-to-paste markdown image linking the status
// badge to the flag's admin detail page.
func (uc *GetFlagUseCase) badgeSnippet(f *flag.Flag) string {
	return fmt.Sprintf("[![%s](%s/api/v1/switches/%d/svg-badge)](%s/zbs/switches/%d)",
		f.Name(), uc.baseURL, f.ID(), uc.baseURL, f.ID())
}
