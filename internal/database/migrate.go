package database

import (
	"gorm.io/gorm"

	"github.com/devconnect/backend/internal/models"
)

// RunMigrations brings the schema up to date. The same path serves both
// the postgres deployment and the sqlite databases the tests run on.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
	)
}
