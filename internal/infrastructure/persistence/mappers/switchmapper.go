package mappers

import (
	"gorm.io/datatypes"

	"switchboard/internal/domain/flag"
	"switchboard/internal/infrastructure/persistence/models"
)

// SwitchMapper converts between the flag domain entity and the GORM model.
type SwitchMapper interface {
	ToDomain(model *models.SwitchModel) *flag.Flag
	ToModel(domain *flag.Flag) *models.SwitchModel
	ToDomainList(modelList []*models.SwitchModel) []*flag.Flag
}

type switchMapper struct{}

// NewSwitchMapper creates a new SwitchMapper.
func NewSwitchMapper() SwitchMapper {
	return &switchMapper{}
}

func (m *switchMapper) ToDomain(model *models.SwitchModel) *flag.Flag {
	if model == nil {
		return nil
	}
	return flag.Reconstruct(
		model.ID,
		model.Name,
		model.IsActive,
		model.Groups,
		model.Version,
		model.Comment,
		model.TTLDays,
		model.JiraTicket,
		model.CreatedAt,
		model.UpdatedAt,
		model.DeletedAt,
	)
}

func (m *switchMapper) ToModel(domain *flag.Flag) *models.SwitchModel {
	if domain == nil {
		return nil
	}
	return &models.SwitchModel{
		ID:         domain.ID(),
		Name:       domain.Name(),
		IsActive:   domain.IsActive(),
		Groups:     datatypes.NewJSONSlice(domain.Groups()),
		Version:    domain.Version(),
		Comment:    domain.Comment(),
		TTLDays:    domain.TTLDays(),
		JiraTicket: domain.JiraTicket(),
		CreatedAt:  domain.CreatedAt(),
		UpdatedAt:  domain.UpdatedAt(),
		DeletedAt:  domain.DeletedAt(),
	}
}

func (m *switchMapper) ToDomainList(modelList []*models.SwitchModel) []*flag.Flag {
	if modelList == nil {
		return nil
	}
	domains := make([]*flag.Flag, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}
