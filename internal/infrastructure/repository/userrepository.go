package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"switchboard/internal/domain/user"
	"switchboard/internal/infrastructure/persistence/mappers"
	"switchboard/internal/infrastructure/persistence/models"
	sharedErrors "switchboard/internal/shared/errors"
	"switchboard/internal/shared/logger"
)

// UserRepository implements user.Repository on GORM.
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.UserMapper
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewUserMapper(),
	}
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return user.ErrUserAlreadyExists
		}
		r.logger.Errorw("failed to create user", "login", u.Login(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

// Update persists mutable fields of an existing user.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)

	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("id = ?", u.ID()).
		Select("password_hash", "is_superuser", "disabled", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", u.ID(), "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// FindByID returns the user or user.ErrUserNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to find user by id", "id", id, "error", err)
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// FindByLogin returns the user or user.ErrUserNotFound.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).Where("login = ?", login).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to find user by login", "login", login, "error", err)
		return nil, fmt.Errorf("failed to find user by login: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// List returns all users ordered by login.
func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var modelList []*models.UserModel

	err := r.db.WithContext(ctx).Order("login ASC").Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// AssignedFlagIDs returns the ids of switches the user may edit.
func (r *UserRepository) AssignedFlagIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint

	err := r.db.WithContext(ctx).
		Model(&models.UserSwitchModel{}).
		Where("user_id = ?", userID).
		Pluck("switch_id", &ids).Error
	if err != nil {
		r.logger.Errorw("failed to load user switch assignments", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load user switch assignments: %w", err)
	}

	return ids, nil
}

// ReplaceAssignments swaps the user's switch assignments for the given set.
func (r *UserRepository) ReplaceAssignments(ctx context.Context, userID uint, flagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSwitchModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear user switch assignments: %w", err)
		}

		seen := make(map[uint]struct{}, len(flagIDs))
		rows := make([]models.UserSwitchModel, 0, len(flagIDs))
		for _, id := range flagIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			rows = append(rows, models.UserSwitchModel{UserID: userID, SwitchID: id})
		}
		if len(rows) == 0 {
			return nil
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to store user switch assignments: %w", err)
		}
		return nil
	})
}
