package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog-app/backend/internal/models"
	"github.com/vitalog-app/backend/internal/status"
	"github.com/vitalog-app/backend/internal/testhelpers"
)

func newEntryService(t *testing.T) *EntryService {
	return NewEntryService(testhelpers.SetupTestDatabase(t), status.DefaultThresholds(), nil)
}

func TestUpsertEntryCreatesThenUpdates(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	created, err := svc.UpsertEntry(ctx, userID, date, 70, 175, 22, 2000)
	require.NoError(t, err)
	assert.Equal(t, Day(date), created.Date)

	// same day, different time of day: updates in place
	later := date.Add(8 * time.Hour)
	updated, err := svc.UpsertEntry(ctx, userID, later, 69.5, 175, 21.5, 2500)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 69.5, updated.WeightKg)

	entries, err := svc.ListEntries(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpsertEntryValidation(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name                                      string
		weightKg, heightCm, bodyFatPct, waterIntk float64
	}{
		{"zero weight", 0, 175, 20, 1000},
		{"negative weight", -70, 175, 20, 1000},
		{"zero height", 70, 0, 20, 1000},
		{"body fat above 100", 70, 175, 101, 1000},
		{"negative body fat", 70, 175, -1, 1000},
		{"negative water", 70, 175, 20, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpsertEntry(ctx, userID, date, tc.weightKg, tc.heightCm, tc.bodyFatPct, tc.waterIntk)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetEntryNotFound(t *testing.T) {
	svc := newEntryService(t)

	_, err := svc.GetEntry(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddFoodItemRecomputesSummary(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()

	entry, err := svc.UpsertEntry(ctx, userID, time.Now(), 70, 175, 22, 2000)
	require.NoError(t, err)

	_, err = svc.AddFoodItem(ctx, userID, entry.ID, "oatmeal", 170, 1, models.MealBreakfast)
	require.NoError(t, err)
	// quantity multiplies the line: 70 * 2 = 140
	_, err = svc.AddFoodItem(ctx, userID, entry.ID, "egg", 70, 2, models.MealBreakfast)
	require.NoError(t, err)

	loaded, err := svc.GetEntry(ctx, userID, entry.Date)
	require.NoError(t, err)
	require.NotNil(t, loaded.Summary)
	assert.Equal(t, 310.0, loaded.Summary.TotalFoodCalories)
	assert.Equal(t, 310.0, loaded.Summary.NetCalories)
}

func TestAddFoodItemValidation(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()

	entry, err := svc.UpsertEntry(ctx, userID, time.Now(), 70, 175, 22, 2000)
	require.NoError(t, err)

	_, err = svc.AddFoodItem(ctx, userID, entry.ID, "mystery", 100, 0, models.MealLunch)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddFoodItem(ctx, userID, entry.ID, "antimatter", -100, 1, models.MealLunch)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddExerciseItemRecomputesSummary(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()

	entry, err := svc.UpsertEntry(ctx, userID, time.Now(), 70, 175, 22, 2000)
	require.NoError(t, err)

	_, err = svc.AddFoodItem(ctx, userID, entry.ID, "pasta", 600, 1, models.MealDinner)
	require.NoError(t, err)
	_, err = svc.AddExerciseItem(ctx, userID, entry.ID, "running", 30, 350)
	require.NoError(t, err)

	loaded, err := svc.GetEntry(ctx, userID, entry.Date)
	require.NoError(t, err)
	require.NotNil(t, loaded.Summary)
	assert.Equal(t, 350.0, loaded.Summary.TotalExerciseCalories)
	assert.Equal(t, 250.0, loaded.Summary.NetCalories)
	assert.Equal(t, "good", loaded.Summary.ExerciseStatus)
}

func TestRemoveFoodItem(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()

	entry, err := svc.UpsertEntry(ctx, userID, time.Now(), 70, 175, 22, 2000)
	require.NoError(t, err)

	item, err := svc.AddFoodItem(ctx, userID, entry.ID, "cake", 450, 1, models.MealSnack)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFoodItem(ctx, userID, entry.ID, item.ID))

	loaded, err := svc.GetEntry(ctx, userID, entry.Date)
	require.NoError(t, err)
	assert.Empty(t, loaded.FoodItems)
	require.NotNil(t, loaded.Summary)
	assert.Equal(t, 0.0, loaded.Summary.TotalFoodCalories)

	// second delete finds nothing
	err = svc.RemoveFoodItem(ctx, userID, entry.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveExerciseItemNotFound(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()

	entry, err := svc.UpsertEntry(ctx, userID, time.Now(), 70, 175, 22, 2000)
	require.NoError(t, err)

	err = svc.RemoveExerciseItem(ctx, userID, entry.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEntryRemovesChildren(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()

	entry, err := svc.UpsertEntry(ctx, userID, time.Now(), 70, 175, 22, 2000)
	require.NoError(t, err)

	_, err = svc.AddFoodItem(ctx, userID, entry.ID, "toast", 120, 1, models.MealBreakfast)
	require.NoError(t, err)
	_, err = svc.AddExerciseItem(ctx, userID, entry.ID, "cycling", 45, 400)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, userID, entry.ID))

	_, err = svc.GetEntry(ctx, userID, entry.Date)
	assert.ErrorIs(t, err, ErrNotFound)

	var foodCount, exerciseCount int64
	require.NoError(t, svc.db.Model(&models.FoodItem{}).Where("daily_entry_id = ?", entry.ID).Count(&foodCount).Error)
	require.NoError(t, svc.db.Model(&models.ExerciseItem{}).Where("daily_entry_id = ?", entry.ID).Count(&exerciseCount).Error)
	assert.Zero(t, foodCount)
	assert.Zero(t, exerciseCount)
}

func TestDeleteEntryFreesDateForRelogging(t *testing.T) {
	svc := newEntryService(t)
	userID := uuid.New()
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	entry, err := svc.UpsertEntry(ctx, userID, date, 70, 175, 22, 2000)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEntry(ctx, userID, entry.ID))

	relogged, err := svc.UpsertEntry(ctx, userID, date, 71, 175, 22, 1800)
	require.NoError(t, err)
	assert.NotEqual(t, entry.ID, relogged.ID)
}

func TestEntryScopedToUser(t *testing.T) {
	svc := newEntryService(t)
	ctx := context.Background()

	owner := uuid.New()
	entry, err := svc.UpsertEntry(ctx, owner, time.Now(), 70, 175, 22, 2000)
	require.NoError(t, err)

	// another user cannot touch the entry
	_, err = svc.AddFoodItem(ctx, uuid.New(), entry.ID, "stolen snack", 100, 1, models.MealSnack)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteEntry(ctx, uuid.New(), entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
