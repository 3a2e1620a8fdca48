package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog-app/backend/internal/models"
	"github.com/vitalog-app/backend/internal/testhelpers"
)

// fixed clock so date arithmetic in tests is deterministic
var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func newGoalService(t *testing.T) *GoalService {
	svc := NewGoalService(testhelpers.SetupTestDatabase(t))
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreateGoal(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()

	goal, err := svc.CreateGoal(context.Background(), userID, models.GoalWeight, 80, 70, testNow.AddDate(0, 2, 0))
	require.NoError(t, err)

	assert.Equal(t, models.GoalActive, goal.Status)
	assert.Equal(t, goal.StartValue, goal.CurrentValue)
	assert.Equal(t, Day(testNow), goal.StartDate)
	assert.False(t, goal.Increasing())
}

func TestCreateGoalRejectsPastTargetDate(t *testing.T) {
	svc := newGoalService(t)

	_, err := svc.CreateGoal(context.Background(), uuid.New(), models.GoalWeight, 80, 70, testNow.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateGoalAcceptsTargetDateToday(t *testing.T) {
	svc := newGoalService(t)

	_, err := svc.CreateGoal(context.Background(), uuid.New(), models.GoalWeight, 80, 70, testNow)
	assert.NoError(t, err)
}

func TestCreateGoalRejectsUnknownType(t *testing.T) {
	svc := newGoalService(t)

	_, err := svc.CreateGoal(context.Background(), uuid.New(), models.GoalType("steps"), 0, 10000, testNow.AddDate(0, 1, 0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateGoalReplacesActiveGoalOfSameType(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	first, err := svc.CreateGoal(ctx, userID, models.GoalWeight, 82, 75, testNow.AddDate(0, 1, 0))
	require.NoError(t, err)

	_, err = svc.CreateGoal(ctx, userID, models.GoalWeight, 80, 72, testNow.AddDate(0, 2, 0))
	require.NoError(t, err)

	old, err := svc.GetGoal(ctx, userID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GoalAbandoned, old.Status)

	goals, err := svc.ListGoals(ctx, userID)
	require.NoError(t, err)
	active := 0
	for _, g := range goals {
		if g.Status == models.GoalActive {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestUpdateProgressNoChange(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, userID, models.GoalWeight, 80, 70, testNow.AddDate(0, 1, 0))
	require.NoError(t, err)

	_, err = svc.UpdateProgress(ctx, userID, goal.ID, 80)
	assert.ErrorIs(t, err, ErrNoChange)

	// stored goal is untouched
	stored, err := svc.GetGoal(ctx, userID, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, stored.CurrentValue)
	assert.Equal(t, models.GoalActive, stored.Status)
}

func TestUpdateProgressRounding(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, userID, models.GoalWeight, 60, 55, testNow.AddDate(0, 1, 0))
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(ctx, userID, goal.ID, 55.455)
	require.NoError(t, err)
	assert.Equal(t, 55.45, updated.CurrentValue)
}

func TestUpdateProgressCompletesWeightLossGoal(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, userID, models.GoalWeight, 80, 70, testNow.AddDate(0, 3, 0))
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(ctx, userID, goal.ID, 70.0)
	require.NoError(t, err)
	assert.Equal(t, models.GoalCompleted, updated.Status)
}

// completion is monotonic: regressing past the target does not reactivate
func TestUpdateProgressCompletionIsMonotonic(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, userID, models.GoalWeight, 80, 70, testNow.AddDate(0, 3, 0))
	require.NoError(t, err)

	_, err = svc.UpdateProgress(ctx, userID, goal.ID, 70.0)
	require.NoError(t, err)

	regressed, err := svc.UpdateProgress(ctx, userID, goal.ID, 72.0)
	require.NoError(t, err)
	assert.Equal(t, models.GoalCompleted, regressed.Status)
	assert.Equal(t, 72.0, regressed.CurrentValue)
}

func TestUpdateProgressCompletesIncreasingGoal(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, userID, models.GoalWaterIntake, 1500, 2500, testNow.AddDate(0, 1, 0))
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(ctx, userID, goal.ID, 2600)
	require.NoError(t, err)
	assert.Equal(t, models.GoalCompleted, updated.Status)
}

func TestUpdateProgressRejectsAbandonedGoal(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, userID, models.GoalBodyFat, 25, 18, testNow.AddDate(0, 1, 0))
	require.NoError(t, err)

	_, err = svc.AbandonGoal(ctx, userID, goal.ID)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(ctx, userID, goal.ID, 20)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProgressUnknownGoal(t *testing.T) {
	svc := newGoalService(t)

	_, err := svc.UpdateProgress(context.Background(), uuid.New(), uuid.New(), 70)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAbandonGoalTwiceFails(t *testing.T) {
	svc := newGoalService(t)
	userID := uuid.New()
	ctx := context.Background()

	goal, err := svc.CreateGoal(ctx, userID, models.GoalBMI, 27, 23, testNow.AddDate(0, 1, 0))
	require.NoError(t, err)

	_, err = svc.AbandonGoal(ctx, userID, goal.ID)
	require.NoError(t, err)

	_, err = svc.AbandonGoal(ctx, userID, goal.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemainingDays(t *testing.T) {
	svc := newGoalService(t)

	assert.Equal(t, 0, svc.RemainingDays(testNow))
	assert.Equal(t, 0, svc.RemainingDays(testNow.AddDate(0, 0, -1)))
	assert.Equal(t, 10, svc.RemainingDays(testNow.AddDate(0, 0, 10)))
	assert.Equal(t, 1, svc.RemainingDays(testNow.AddDate(0, 0, 1)))
}
