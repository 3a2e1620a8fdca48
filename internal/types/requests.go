package types

import (
	"time"

	"github.com/google/uuid"
)

// UpsertEntryRequest represents the request body for logging a day's body
// metrics. Logging the same date twice updates the existing entry.
type UpsertEntryRequest struct {
	Date        string  `json:"date" binding:"required"` // 2006-01-02
	WeightKg    float64 `json:"weight_kg" binding:"required"`
	HeightCm    float64 `json:"height_cm" binding:"required"`
	BodyFatPct  float64 `json:"body_fat_pct"`
	WaterIntake float64 `json:"water_intake_ml"`
}

// AddFoodItemRequest represents the request body for adding a food line to an
// entry.
type AddFoodItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Meal     string  `json:"meal" binding:"required,oneof=breakfast lunch dinner snack"`
}

// AddExerciseItemRequest represents the request body for adding an exercise
// session to an entry.
type AddExerciseItemRequest struct {
	Name           string  `json:"name" binding:"required"`
	DurationMin    int     `json:"duration_min"`
	CaloriesBurned float64 `json:"calories_burned"`
}

// CreateGoalRequest represents the request body for creating a goal. When
// StartValue is omitted the latest logged entry seeds it.
type CreateGoalRequest struct {
	Type        string   `json:"type" binding:"required,oneof=weight bmi body_fat water_intake"`
	StartValue  *float64 `json:"start_value"`
	TargetValue float64  `json:"target_value" binding:"required"`
	TargetDate  string   `json:"target_date" binding:"required"` // 2006-01-02
}

// UpdateGoalProgressRequest represents the request body for recording a new
// current value on a goal.
type UpdateGoalProgressRequest struct {
	CurrentValue float64 `json:"current_value" binding:"required"`
}

// GoalResponse is a goal decorated with the display fields the UI needs.
type GoalResponse struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	Unit          string    `json:"unit"`
	StartValue    float64   `json:"start_value"`
	CurrentValue  float64   `json:"current_value"`
	TargetValue   float64   `json:"target_value"`
	StartDate     time.Time `json:"start_date"`
	TargetDate    time.Time `json:"target_date"`
	Status        string    `json:"status"`
	Increasing    bool      `json:"increasing"`
	RemainingDays int       `json:"remaining_days"`
}

// DayMetrics is the derived metric bundle for one date.
type DayMetrics struct {
	Date                  string         `json:"date"`
	BMI                   float64        `json:"bmi"`
	BMICategory           string         `json:"bmi_category"`
	BMISeverity           int            `json:"bmi_severity"`
	TotalFoodCalories     float64        `json:"total_food_calories"`
	TotalExerciseCalories float64        `json:"total_exercise_calories"`
	NetCalories           float64        `json:"net_calories"`
	MealShares            map[string]int `json:"meal_shares"`
	CalorieStatus         string         `json:"calorie_status"`
	ExerciseStatus        string         `json:"exercise_status"`
	DayStatus             string         `json:"day_status"`
}
