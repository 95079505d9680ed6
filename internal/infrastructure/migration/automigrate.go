package migration

import (
	"gorm.io/gorm"

	"switchboard/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every GORM model in schema order.
func AutoMigrateModels() []any {
	return []any{
		&models.UserModel{},
		&models.SwitchModel{},
		&models.SwitchHistoryModel{},
		&models.UserSwitchModel{},
	}
}

// AutoMigrate applies GORM auto-migration; used by the server's
// --auto-migrate flag for development databases. Production schemas go
// through the SQL script strategies.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AutoMigrateModels()...)
}
