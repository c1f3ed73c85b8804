package migration

import (
	"fmt"

	"gorm.io/gorm"

	"gymdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in migration order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PlanModel{},
		&models.MemberModel{},
		&models.AssignmentModel{},
		&models.PaymentModel{},
	}
}

// Run applies the schema for all models.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
