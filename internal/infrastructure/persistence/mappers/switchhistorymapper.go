package mappers

import (
	"switchboard/internal/domain/flag"
	"switchboard/internal/infrastructure/persistence/models"
)

// SwitchHistoryMapper converts between history entries and the GORM model.
type SwitchHistoryMapper interface {
	ToDomain(model *models.SwitchHistoryModel) *flag.HistoryEntry
	ToModel(domain *flag.HistoryEntry) *models.SwitchHistoryModel
	ToDomainList(modelList []*models.SwitchHistoryModel) []*flag.HistoryEntry
}

type switchHistoryMapper struct{}

// NewSwitchHistoryMapper creates a new SwitchHistoryMapper.
func NewSwitchHistoryMapper() SwitchHistoryMapper {
	return &switchHistoryMapper{}
}

func (m *switchHistoryMapper) ToDomain(model *models.SwitchHistoryModel) *flag.HistoryEntry {
	if model == nil {
		return nil
	}
	return flag.ReconstructHistoryEntry(
		model.ID,
		model.SwitchID,
		model.UserID,
		model.NewValue,
		model.ChangedAt,
	)
}

func (m *switchHistoryMapper) ToModel(domain *flag.HistoryEntry) *models.SwitchHistoryModel {
	if domain == nil {
		return nil
	}
	return &models.SwitchHistoryModel{
		ID:        domain.ID(),
		SwitchID:  domain.FlagID(),
		UserID:    domain.UserID(),
		NewValue:  domain.NewValue(),
		ChangedAt: domain.ChangedAt(),
	}
}

func (m *switchHistoryMapper) ToDomainList(modelList []*models.SwitchHistoryModel) []*flag.HistoryEntry {
	if modelList == nil {
		return nil
	}
	domains := make([]*flag.HistoryEntry, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains
}
