package models

import (
	"time"

	"gorm.io/datatypes"
)

// SwitchModel is the GORM model for the switches table. Groups are stored
// as a JSON array; the composite indices back the evaluation query's
// (name, is_active) and (name, version, is_active) predicates.
type SwitchModel struct {
	ID         uint                        `gorm:"primaryKey;autoIncrement"`
	Name       string                      `gorm:"column:name;type:varchar(255);not null;uniqueIndex;index:idx_name_is_active,priority:1;index:idx_name_version_is_active,priority:1"`
	IsActive   bool                        `gorm:"column:is_active;not null;index:idx_name_is_active,priority:2;index:idx_name_version_is_active,priority:3"`
	Groups     datatypes.JSONSlice[string] `gorm:"column:groups"`
	Version    *int                        `gorm:"column:version;index:idx_name_version_is_active,priority:2"`
	Comment    string                      `gorm:"column:comment;type:text"`
	TTLDays    int                         `gorm:"column:ttl;not null"`
	JiraTicket string                      `gorm:"column:jira_ticket;type:varchar(255)"`
	CreatedAt  time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt  *time.Time                  `gorm:"column:deleted_at;index"`
}

// TableName returns the table name for GORM.
func (SwitchModel) TableName() string {
	return "switches"
}
