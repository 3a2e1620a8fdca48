package status

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCalories(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name   string
		net    float64
		target float64
		want   CalorieLevel
	}{
		{"well below", 1200, 2000, CalorieBelowTarget},
		{"at lower bound", 1800, 2000, CalorieAppropriate},
		{"on target", 2000, 2000, CalorieAppropriate},
		{"at upper bound", 2200, 2000, CalorieAppropriate},
		{"above", 2201, 2000, CalorieAboveTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyCalories(tt.net, tt.target, th)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyCaloriesRejectsBadInput(t *testing.T) {
	th := DefaultThresholds()

	_, err := ClassifyCalories(math.NaN(), 2000, th)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ClassifyCalories(1500, 0, th)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ClassifyCalories(1500, math.Inf(1), th)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClassifyExercise(t *testing.T) {
	th := DefaultThresholds() // low 200, high 800, fair floor 100

	tests := []struct {
		burned float64
		want   ExerciseLevel
	}{
		{0, ExerciseTooLittle},
		{99, ExerciseTooLittle},
		{100, ExerciseFair},
		{199, ExerciseFair},
		{200, ExerciseGood},
		{800, ExerciseGood},
		{801, ExerciseTooMuch},
	}
	for _, tt := range tests {
		got, err := ClassifyExercise(tt.burned, th)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "burned %v", tt.burned)
	}
}

func TestClassifyExerciseRejectsBadInput(t *testing.T) {
	th := DefaultThresholds()

	_, err := ClassifyExercise(-1, th)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ClassifyExercise(math.NaN(), th)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestThresholdsValidate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())

	bad := DefaultThresholds()
	bad.CalorieLowerRatio = 1.5
	bad.CalorieUpperRatio = 1.1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = DefaultThresholds()
	bad.ExerciseHighCalories = 100
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}

// The combination table must be total: every calorie level crossed with every
// exercise level yields a defined day level.
func TestCombineDayIsTotal(t *testing.T) {
	calorieLevels := []CalorieLevel{CalorieAppropriate, CalorieBelowTarget, CalorieAboveTarget}
	exerciseLevels := []ExerciseLevel{ExerciseGood, ExerciseFair, ExerciseTooLittle, ExerciseTooMuch}

	for _, c := range calorieLevels {
		for _, e := range exerciseLevels {
			day, err := CombineDay(c, e)
			require.NoError(t, err, "combination %v/%v", c, e)
			assert.NotEqual(t, "unknown", day.String())
		}
	}
}

func TestCombineDayCorners(t *testing.T) {
	day, err := CombineDay(CalorieAppropriate, ExerciseGood)
	require.NoError(t, err)
	assert.Equal(t, DayExcellent, day)

	day, err = CombineDay(CalorieAboveTarget, ExerciseTooLittle)
	require.NoError(t, err)
	assert.Equal(t, DayNeedsImprovement, day)

	day, err = CombineDay(CalorieBelowTarget, ExerciseFair)
	require.NoError(t, err)
	assert.Equal(t, DayFair, day)
}

func TestCombineDayRejectsUnknownTags(t *testing.T) {
	_, err := CombineDay(CalorieLevel(99), ExerciseGood)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CombineDay(CalorieAppropriate, ExerciseLevel(99))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
