package models

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies which meal of the day a food item belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// DailyEntry is one user's log for one calendar day. Date carries no
// time-of-day component; a user has at most one entry per date. Deletion is
// hard: a soft-deleted row would still hold the (user, date) unique index and
// block re-logging that day.
type DailyEntry struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_entries_user_date" json:"user_id"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_entries_user_date" json:"date"`
	WeightKg    float64   `gorm:"not null" json:"weight_kg"`
	HeightCm    float64   `gorm:"not null" json:"height_cm"`
	BodyFatPct  float64   `json:"body_fat_pct"`
	WaterIntake float64   `json:"water_intake_ml"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	FoodItems     []FoodItem      `gorm:"constraint:OnDelete:CASCADE" json:"food_items,omitempty"`
	ExerciseItems []ExerciseItem  `gorm:"constraint:OnDelete:CASCADE" json:"exercise_items,omitempty"`
	Summary       *CalorieSummary `gorm:"constraint:OnDelete:CASCADE" json:"summary,omitempty"`
}

func (DailyEntry) TableName() string {
	return "daily_entries"
}

// FoodItem is a food line owned by exactly one DailyEntry. Calories are
// per unit; the line total is Calories * Quantity.
type FoodItem struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	DailyEntryID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"daily_entry_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Calories     float64   `gorm:"not null" json:"calories"`
	Quantity     int       `gorm:"not null;default:1" json:"quantity"`
	Meal         MealType  `gorm:"size:20;not null" json:"meal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (FoodItem) TableName() string {
	return "food_items"
}

// LineCalories is the total contributed by this line.
func (f FoodItem) LineCalories() float64 {
	return f.Calories * float64(f.Quantity)
}

// ExerciseItem is an exercise session owned by exactly one DailyEntry.
type ExerciseItem struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	DailyEntryID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"daily_entry_id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	DurationMin    int       `json:"duration_min"`
	CaloriesBurned float64   `gorm:"not null" json:"calories_burned"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ExerciseItem) TableName() string {
	return "exercise_items"
}

// CalorieSummary is the derived calorie aggregate for one DailyEntry. It is
// recomputed from the entry's food and exercise items whenever they change
// and is never authoritative on its own.
type CalorieSummary struct {
	ID                    uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	DailyEntryID          uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"daily_entry_id"`
	TotalFoodCalories     float64   `gorm:"not null" json:"total_food_calories"`
	TotalExerciseCalories float64   `gorm:"not null" json:"total_exercise_calories"`
	NetCalories           float64   `gorm:"not null" json:"net_calories"`
	CalorieStatus         string    `gorm:"size:20" json:"calorie_status"`
	ExerciseStatus        string    `gorm:"size:20" json:"exercise_status"`
	DayStatus             string    `gorm:"size:20" json:"day_status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (CalorieSummary) TableName() string {
	return "calorie_summaries"
}
