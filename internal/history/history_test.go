package history

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalog-app/backend/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSortedByDateDescending(t *testing.T) {
	a := models.DailyEntry{ID: uuid.New(), Date: day(2025, 3, 1)}
	b := models.DailyEntry{ID: uuid.New(), Date: day(2025, 3, 3)}
	c := models.DailyEntry{ID: uuid.New(), Date: day(2025, 3, 2)}

	got := SortedByDateDescending([]models.DailyEntry{a, b, c})
	require.Len(t, got, 3)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)
	assert.Equal(t, a.ID, got[2].ID)

	// input order is untouched
	assert.Equal(t, day(2025, 3, 1), a.Date)
}

func TestSortedByDateDescendingStableOnTies(t *testing.T) {
	first := models.DailyEntry{ID: uuid.New(), Date: day(2025, 3, 1)}
	second := models.DailyEntry{ID: uuid.New(), Date: day(2025, 3, 1)}

	got := SortedByDateDescending([]models.DailyEntry{first, second})
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestLatestEntry(t *testing.T) {
	assert.Nil(t, LatestEntry(nil))

	oldest := models.DailyEntry{ID: uuid.New(), Date: day(2025, 1, 5)}
	newest := models.DailyEntry{ID: uuid.New(), Date: day(2025, 2, 10)}

	latest := LatestEntry([]models.DailyEntry{oldest, newest})
	require.NotNil(t, latest)
	assert.Equal(t, newest.ID, latest.ID)
}

func TestSeriesForFiltersUnrecordedSamples(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: day(2025, 3, 1), WeightKg: 80, HeightCm: 180, WaterIntake: 1500},
		{Date: day(2025, 3, 2), WeightKg: 80, HeightCm: 180, WaterIntake: 0}, // not recorded
		{Date: day(2025, 3, 3), WeightKg: 80, HeightCm: 180, WaterIntake: 2000},
	}

	points := SeriesFor(entries, FieldWaterIntake)
	require.Len(t, points, 2)
	assert.Equal(t, "01/03/25", points[0].Label)
	assert.Equal(t, 1500.0, points[0].Value)
	assert.Equal(t, "03/03/25", points[1].Label)
	assert.Equal(t, 2000.0, points[1].Value)
}

func TestSeriesForOrdersOldestFirst(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: day(2025, 3, 3), WeightKg: 79, HeightCm: 180},
		{Date: day(2025, 3, 1), WeightKg: 81, HeightCm: 180},
		{Date: day(2025, 3, 2), WeightKg: 80, HeightCm: 180},
	}

	points := SeriesFor(entries, FieldWeight)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{81, 80, 79}, []float64{points[0].Value, points[1].Value, points[2].Value})
}

func TestSeriesForDerivesBMI(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: day(2025, 3, 1), WeightKg: 80, HeightCm: 180},
	}

	points := SeriesFor(entries, FieldBMI)
	require.Len(t, points, 1)
	assert.InDelta(t, 24.69, points[0].Value, 0.01)
}

func TestSeriesForSkipsEntriesWithBadHeight(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: day(2025, 3, 1), WeightKg: 80, HeightCm: 0},
		{Date: day(2025, 3, 2), WeightKg: 80, HeightCm: 180},
	}

	points := SeriesFor(entries, FieldBMI)
	require.Len(t, points, 1)
	assert.Equal(t, "02/03/25", points[0].Label)
}

func TestFieldValid(t *testing.T) {
	assert.True(t, FieldWeight.Valid())
	assert.True(t, FieldWaterIntake.Valid())
	assert.False(t, Field("steps").Valid())
}
