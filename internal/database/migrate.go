package database

import (
	"gorm.io/gorm"

	"github.com/vitalog-app/backend/internal/models"
)

// Migrate brings the schema up to date for every model the services touch.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.DailyEntry{},
		&models.FoodItem{},
		&models.ExerciseItem{},
		&models.CalorieSummary{},
		&models.Goal{},
	)
}
