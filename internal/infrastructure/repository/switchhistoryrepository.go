package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"switchboard/internal/domain/flag"
	"switchboard/internal/infrastructure/persistence/mappers"
	"switchboard/internal/infrastructure/persistence/models"
	"switchboard/internal/shared/logger"
)

// SwitchHistoryRepository implements flag.HistoryRepository on GORM.
type SwitchHistoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SwitchHistoryMapper
}

// NewSwitchHistoryRepository creates a new SwitchHistoryRepository.
func NewSwitchHistoryRepository(db *gorm.DB, logger logger.Interface) flag.HistoryRepository {
	return &SwitchHistoryRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSwitchHistoryMapper(),
	}
}

// Append stores a new history entry.
func (r *SwitchHistoryRepository) Append(ctx context.Context, entry *flag.HistoryEntry) error {
	model := r.mapper.ToModel(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append switch history",
			"switch_id", entry.FlagID(), "error", err)
		return fmt.Errorf("failed to append switch history: %w", err)
	}

	entry.SetID(model.ID)
	return nil
}

// ListByFlag returns history entries for a flag, newest first.
func (r *SwitchHistoryRepository) ListByFlag(ctx context.Context, flagID uint) ([]*flag.HistoryEntry, error) {
	var modelList []*models.SwitchHistoryModel

	err := r.db.WithContext(ctx).
		Where("switch_id = ?", flagID).
		Order("changed_at DESC, id DESC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list switch history", "switch_id", flagID, "error", err)
		return nil, fmt.Errorf("failed to list switch history: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}
