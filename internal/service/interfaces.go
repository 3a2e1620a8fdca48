package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog-app/backend/internal/models"
	"github.com/vitalog-app/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password, username string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IEntryService defines the interface for daily entry operations
type IEntryService interface {
	UpsertEntry(ctx context.Context, userID uuid.UUID, date time.Time, weightKg, heightCm, bodyFatPct, waterIntake float64) (*models.DailyEntry, error)
	GetEntry(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]models.DailyEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
	AddFoodItem(ctx context.Context, userID, entryID uuid.UUID, name string, calories float64, quantity int, meal models.MealType) (*models.FoodItem, error)
	RemoveFoodItem(ctx context.Context, userID, entryID, itemID uuid.UUID) error
	AddExerciseItem(ctx context.Context, userID, entryID uuid.UUID, name string, durationMin int, caloriesBurned float64) (*models.ExerciseItem, error)
	RemoveExerciseItem(ctx context.Context, userID, entryID, itemID uuid.UUID) error
	RecomputeSummary(ctx context.Context, entryID uuid.UUID) error
}

// IGoalService defines the interface for goal lifecycle operations
type IGoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, goalType models.GoalType, startValue, targetValue float64, targetDate time.Time) (*models.Goal, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error)
	UpdateProgress(ctx context.Context, userID, goalID uuid.UUID, newValue float64) (*models.Goal, error)
	AbandonGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error)
	RemainingDays(targetDate time.Time) int
}
