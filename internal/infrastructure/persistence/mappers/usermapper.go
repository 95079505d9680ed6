package mappers

import (
	"switchboard/internal/domain/user"
	"switchboard/internal/infrastructure/persistence/models"
)

// UserMapper converts between the user domain entity and the GORM model.
type UserMapper interface {
	ToDomain(model *models.UserModel) *user.User
	ToModel(domain *user.User) *models.UserModel
	ToDomainList(modelList []*models.UserModel) []*user.User
}

type userMapper struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.Reconstruct(
		model.ID,
		model.Login,
		model.PasswordHash,
		model.IsSuperuser,
		model.Disabled,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapper) ToModel(domain *user.User) *models.UserModel {
	if domain == nil {
		return nil
	}
	return &models.UserModel{
		ID:           domain.ID(),
		Login:        domain.Login(),
		PasswordHash: domain.PasswordHash(),
		IsSuperuser:  domain.IsSuperuser(),
		Disabled:     domain.Disabled(),
		CreatedAt:    domain.CreatedAt(),
		UpdatedAt:    domain.UpdatedAt(),
	}
}

func (m *userMapper) ToDomainList(modelList []*models.UserModel) []*user.User {
	if modelList == nil {
		return nil
	}
	domains := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}
