package migrations

import (
	"gorm.io/gorm"

	"campusdesk/internal/infrastructure/persistence/models"
)

// MigrateAll creates or updates every table the service owns.
func MigrateAll(db *gorm.DB) error {
	if err := MigrateUserTables(db); err != nil {
		return err
	}
	return MigrateTicketTables(db)
}

func MigrateUserTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
	)
}

func MigrateTicketTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
	)
}
