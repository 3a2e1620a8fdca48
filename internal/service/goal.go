package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalog-app/backend/internal/metrics"
	"github.com/vitalog-app/backend/internal/models"
)

// GoalService owns the lifecycle of goals: creation with a baseline, progress
// updates, and status transitions. Each operation is one read-modify-write
// round trip against the store; concurrent updates to the same goal are last
// write wins.
type GoalService struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure GoalService implements IGoalService
var _ IGoalService = (*GoalService)(nil)

// NewGoalService creates a new GoalService instance.
func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{
		db:  db,
		now: time.Now,
	}
}

// CreateGoal creates an active goal starting today. An existing active goal of
// the same type is abandoned first, so at most one stays active per
// (user, type). The target date must not precede today.
func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, goalType models.GoalType, startValue, targetValue float64, targetDate time.Time) (*models.Goal, error) {
	if !goalType.Valid() {
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrInvalidInput, goalType)
	}
	if !isFinite(startValue) || !isFinite(targetValue) {
		return nil, fmt.Errorf("%w: start and target values must be finite", ErrInvalidInput)
	}

	today := Day(s.now())
	target := Day(targetDate)
	if target.Before(today) {
		return nil, fmt.Errorf("%w: target date precedes today", ErrInvalidInput)
	}

	goal := models.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         goalType,
		StartValue:   metrics.RoundHalfUp(startValue, 2),
		CurrentValue: metrics.RoundHalfUp(startValue, 2),
		TargetValue:  metrics.RoundHalfUp(targetValue, 2),
		StartDate:    today,
		TargetDate:   target,
		Status:       models.GoalActive,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// goal replacement: retire the previous active goal of this type
		if err := tx.Model(&models.Goal{}).
			Where("user_id = ? AND type = ? AND status = ?", userID, goalType, models.GoalActive).
			Update("status", models.GoalAbandoned).Error; err != nil {
			return err
		}
		return tx.Create(&goal).Error
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetGoal retrieves a goal by id.
func (s *GoalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	return s.goalByID(ctx, userID, goalID)
}

// ListGoals returns a user's goals, newest first.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// UpdateProgress records a new current value on a goal. The value is rounded
// half-up to two decimals before comparison and storage. Crossing the target
// in the goal's direction completes the goal; completion is monotonic, so a
// later regression never reactivates it. Abandoned goals reject updates.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID uuid.UUID, newValue float64) (*models.Goal, error) {
	if !isFinite(newValue) {
		return nil, fmt.Errorf("%w: progress value must be finite", ErrInvalidInput)
	}

	goal, err := s.goalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal.Status == models.GoalAbandoned {
		return nil, fmt.Errorf("%w: goal is abandoned", ErrInvalidInput)
	}

	rounded := metrics.RoundHalfUp(newValue, 2)
	if rounded == goal.CurrentValue {
		return nil, ErrNoChange
	}

	goal.CurrentValue = rounded
	if goal.Status == models.GoalActive && crossedTarget(*goal, rounded) {
		goal.Status = models.GoalCompleted
	}

	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// AbandonGoal explicitly retires a goal. Only active goals can be abandoned.
func (s *GoalService) AbandonGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	goal, err := s.goalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal.Terminal() {
		return nil, fmt.Errorf("%w: goal already %s", ErrInvalidInput, goal.Status)
	}

	goal.Status = models.GoalAbandoned
	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// RemainingDays reports whole days from now until the target date. Both sides
// are normalized to midnight UTC; dates in the past report 0, never negative.
func (s *GoalService) RemainingDays(targetDate time.Time) int {
	today := Day(s.now())
	target := Day(targetDate)

	days := int(math.Ceil(target.Sub(today).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func crossedTarget(goal models.Goal, value float64) bool {
	if goal.Increasing() {
		return value >= goal.TargetValue
	}
	return value <= goal.TargetValue
}

func (s *GoalService) goalByID(ctx context.Context, userID, goalID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
