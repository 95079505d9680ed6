package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"switchboard/internal/domain/flag"
	"switchboard/internal/infrastructure/persistence/mappers"
	"switchboard/internal/infrastructure/persistence/models"
	sharedErrors "switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// SwitchRepository implements flag.Repository on GORM.
//
// List narrows the candidate set with portable SQL predicates (activity,
// hidden window, version bound) and then applies the full conjunctive
// ListQuery in memory; group membership lives in a JSON column, and keeping
// the final word with the pure predicate keeps MySQL and the SQLite test
// database in agreement.
type SwitchRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SwitchMapper
}

// NewSwitchRepository creates a new SwitchRepository.
func NewSwitchRepository(db *gorm.DB, logger logger.Interface) flag.Repository {
	return &SwitchRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewSwitchMapper(),
	}
}

// Create inserts a new flag. A name collision surfaces as
// flag.ErrFlagAlreadyExists; the caller decides between conflict and
// resurrection semantics.
func (r *SwitchRepository) Create(ctx context.Context, f *flag.Flag) error {
	model := r.mapper.ToModel(f)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return flag.ErrFlagAlreadyExists
		}
		r.logger.Errorw("failed to create switch", "name", f.Name(), "error", err)
		return fmt.Errorf("failed to create switch: %w", err)
	}

	f.SetID(model.ID)
	return nil
}

// Update persists all mutable fields of an existing flag.
func (r *SwitchRepository) Update(ctx context.Context, f *flag.Flag) error {
	model := r.mapper.ToModel(f)

	result := r.db.WithContext(ctx).
		Model(&models.SwitchModel{}).
		Where("id = ?", f.ID()).
		Select("name", "is_active", "groups", "version", "comment", "ttl", "jira_ticket", "updated_at", "deleted_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update switch", "id", f.ID(), "error", result.Error)
		return fmt.Errorf("failed to update switch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return flag.ErrFlagNotFound
	}
	return nil
}

// FindByID returns the flag in any lifecycle state.
func (r *SwitchRepository) FindByID(ctx context.Context, id uint) (*flag.Flag, error) {
	var model models.SwitchModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, flag.ErrFlagNotFound
		}
		r.logger.Errorw("failed to find switch by id", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find switch by id: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// FindByName returns the flag in any lifecycle state.
func (r *SwitchRepository) FindByName(ctx context.Context, name string) (*flag.Flag, error) {
	var model models.SwitchModel

	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, flag.ErrFlagNotFound
		}
		r.logger.Errorw("failed to find switch by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to find switch by name: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// List returns flags matching the query, created_at descending.
func (r *SwitchRepository) List(ctx context.Context, query flag.ListQuery) ([]*flag.Flag, error) {
	now := time.Now().UTC()

	tx := r.db.WithContext(ctx).Model(&models.SwitchModel{})
	if query.IsActive != nil {
		tx = tx.Where("is_active = ?", *query.IsActive)
	}
	if !query.ShowHidden {
		tx = tx.Where("deleted_at IS NULL OR deleted_at > ?", now)
	}
	if query.Version != nil {
		tx = tx.Where("version IS NULL OR version <= ?", *query.Version)
	}

	var modelList []*models.SwitchModel
	if err := tx.Order("created_at DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list switches", "error", err)
		return nil, fmt.Errorf("failed to list switches: %w", err)
	}

	return query.Filter(r.mapper.ToDomainList(modelList), now), nil
}

// DistinctGroups returns the sorted union of group names over non-hidden
// flags.
func (r *SwitchRepository) DistinctGroups(ctx context.Context) ([]string, error) {
	now := time.Now().UTC()

	var modelList []*models.SwitchModel
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL OR deleted_at > ?", now).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to load switch groups", "error", err)
		return nil, fmt.Errorf("failed to load switch groups: %w", err)
	}

	seen := make(map[string]struct{})
	for _, model := range modelList {
		for _, group := range model.Groups {
			seen[group] = struct{}{}
		}
	}

	groups := make([]string, 0, len(seen))
	for group := range seen {
		groups = append(groups, group)
	}
	sort.Strings(groups)
	return groups, nil
}
