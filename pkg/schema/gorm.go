package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all entity models for GORM AutoMigrate, in
// dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&Ingredient{},
		&Starter{},
		&Recipe{},
		&PublishNote{},
	}
}

// Migrate runs GORM AutoMigrate to create or update the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
