package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalType is the body metric a goal tracks.
type GoalType string

const (
	GoalWeight      GoalType = "weight"
	GoalBMI         GoalType = "bmi"
	GoalBodyFat     GoalType = "body_fat"
	GoalWaterIntake GoalType = "water_intake"
)

// Valid reports whether t is one of the known goal types.
func (t GoalType) Valid() bool {
	switch t {
	case GoalWeight, GoalBMI, GoalBodyFat, GoalWaterIntake:
		return true
	}
	return false
}

// Unit returns the display unit for values of this goal type.
func (t GoalType) Unit() string {
	switch t {
	case GoalWeight:
		return "kg"
	case GoalBMI:
		return "BMI"
	case GoalBodyFat:
		return "%"
	case GoalWaterIntake:
		return "ml"
	}
	return ""
}

// GoalStatus is the lifecycle state of a goal. Completed and abandoned are
// terminal: the tracker never reverts them automatically.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalAbandoned GoalStatus = "abandoned"
)

// Goal tracks a user's progress from a start value toward a target value.
// Values are in the unit of the goal type. Direction is derived, not stored.
type Goal struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Type         GoalType       `gorm:"size:20;not null" json:"type"`
	StartValue   float64        `gorm:"not null" json:"start_value"`
	CurrentValue float64        `gorm:"not null" json:"current_value"`
	TargetValue  float64        `gorm:"not null" json:"target_value"`
	StartDate    time.Time      `gorm:"not null" json:"start_date"`
	TargetDate   time.Time      `gorm:"not null" json:"target_date"`
	Status       GoalStatus     `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Goal) TableName() string {
	return "goals"
}

// Increasing reports whether progress requires the tracked value to grow.
func (g Goal) Increasing() bool {
	return g.TargetValue > g.StartValue
}

// Terminal reports whether the goal has reached a state the tracker will not
// leave on its own.
func (g Goal) Terminal() bool {
	return g.Status == GoalCompleted || g.Status == GoalAbandoned
}
