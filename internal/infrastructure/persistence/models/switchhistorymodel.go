package models

import "time"

// SwitchHistoryModel is the GORM model for the switch_history table.
// Rows are append-only; there is no update path.
type SwitchHistoryModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	SwitchID  uint      `gorm:"column:switch_id;not null;index"`
	UserID    uint      `gorm:"column:user_id;not null"`
	NewValue  string    `gorm:"column:new_value;type:varchar(64);not null"`
	ChangedAt time.Time `gorm:"column:changed_at;not null"`
}

// TableName returns the table name for GORM.
func (SwitchHistoryModel) TableName() string {
	return "switch_history"
}
