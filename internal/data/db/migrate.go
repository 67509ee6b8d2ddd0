package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/contacts-backend/internal/domain/contacts"
)

// AutoMigrateAll creates the tables and the unique indexes on groups.name and
// contacts.mobile. Those indexes are what actually guarantees uniqueness.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&contacts.Group{},
		&contacts.Contact{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
