package models

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Login        string    `gorm:"column:login;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	IsSuperuser  bool      `gorm:"column:is_superuser;not null;default:false"`
	Disabled     bool      `gorm:"column:disabled;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserSwitchModel is the join table granting a user edit rights on a
// switch. The pair is unique.
type UserSwitchModel struct {
	UserID   uint `gorm:"column:user_id;not null;uniqueIndex:idx_user_switch,priority:1"`
	SwitchID uint `gorm:"column:switch_id;not null;uniqueIndex:idx_user_switch,priority:2"`
}

// TableName returns the table name for GORM.
func (UserSwitchModel) TableName() string {
	return "user_switches"
}
