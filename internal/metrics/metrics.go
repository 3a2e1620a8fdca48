// Package metrics holds the pure calculations that derive body and calorie
// metrics from raw logged values. Nothing here touches the database.
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/vitalog-app/backend/internal/models"
)

// ErrInvalidInput reports a malformed or out-of-range argument.
var ErrInvalidInput = errors.New("invalid input")

// BMICategory is a closed enumeration of BMI bands. Bands are closed at the
// lower bound and open at the upper: exactly 25.0 is Overweight, not Normal.
type BMICategory int

const (
	Underweight BMICategory = iota
	Normal
	Overweight
	Obese
)

// Severity ranks how far the category is from the normal band. Normal is 0,
// Underweight and Overweight are 1, Obese is 2.
func (c BMICategory) Severity() int {
	switch c {
	case Normal:
		return 0
	case Underweight, Overweight:
		return 1
	case Obese:
		return 2
	}
	return 0
}

func (c BMICategory) String() string {
	switch c {
	case Underweight:
		return "underweight"
	case Normal:
		return "normal"
	case Overweight:
		return "overweight"
	case Obese:
		return "obese"
	}
	return "unknown"
}

// CategoryLabels maps each category to a display string. Callers supply
// localized labels; the engine never keeps its own label table.
type CategoryLabels map[BMICategory]string

// Label resolves c through the mapping, falling back to the tag name.
func (l CategoryLabels) Label(c BMICategory) string {
	if s, ok := l[c]; ok {
		return s
	}
	return c.String()
}

// ComputeBMI derives body mass index from weight in kilograms and height in
// centimeters.
func ComputeBMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, fmt.Errorf("%w: weight and height must be positive", ErrInvalidInput)
	}
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || math.IsNaN(heightCm) || math.IsInf(heightCm, 0) {
		return 0, fmt.Errorf("%w: weight and height must be finite", ErrInvalidInput)
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

// CategoryForBMI classifies a BMI value into its band.
func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25.0:
		return Normal
	case bmi < 30.0:
		return Overweight
	default:
		return Obese
	}
}

// MealCalories sums line calories over a set of food items. Each item needs a
// positive integer quantity and non-negative per-unit calories.
func MealCalories(items []models.FoodItem) (float64, error) {
	var total float64
	for _, it := range items {
		if it.Quantity < 1 {
			return 0, fmt.Errorf("%w: quantity must be at least 1 for %q", ErrInvalidInput, it.Name)
		}
		if it.Calories < 0 || math.IsNaN(it.Calories) || math.IsInf(it.Calories, 0) {
			return 0, fmt.Errorf("%w: calories must be non-negative for %q", ErrInvalidInput, it.Name)
		}
		total += it.LineCalories()
	}
	return total, nil
}

// ExerciseCalories sums calories burned over a set of exercise items.
func ExerciseCalories(items []models.ExerciseItem) (float64, error) {
	var total float64
	for _, it := range items {
		if it.CaloriesBurned < 0 || math.IsNaN(it.CaloriesBurned) || math.IsInf(it.CaloriesBurned, 0) {
			return 0, fmt.Errorf("%w: calories burned must be non-negative for %q", ErrInvalidInput, it.Name)
		}
		total += it.CaloriesBurned
	}
	return total, nil
}

// MealSharePercent returns the rounded share of a meal's calories in the day
// total, as an integer percentage. A zero day total yields 0 rather than a
// division error. Shares across meals may not sum to exactly 100 because each
// is rounded independently.
func MealSharePercent(mealCalories, totalCalories float64) int {
	if totalCalories == 0 {
		return 0
	}
	return int(RoundHalfUp(mealCalories/totalCalories*100, 0))
}

// NetCalories is food consumed minus exercise expended. Negative results are
// meaningful and preserved.
func NetCalories(totalFood, totalExercise float64) float64 {
	return totalFood - totalExercise
}

// RoundHalfUp rounds v to the given number of decimal places, with exact
// halves rounding away from zero. The rule applies to the binary float value:
// a literal like 55.455, stored as 55.45499..., rounds down to 55.45. Values
// are never truncated.
func RoundHalfUp(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
