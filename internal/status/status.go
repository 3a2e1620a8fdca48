// Package status classifies a day's derived calorie and exercise numbers into
// discrete levels. The numeric bands are configuration, not constants of the
// engine: callers tune them through Thresholds.
package status

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput reports a non-finite or out-of-range argument.
var ErrInvalidInput = errors.New("invalid input")

// CalorieLevel classifies net calories against a target energy expenditure.
type CalorieLevel int

const (
	CalorieAppropriate CalorieLevel = iota
	CalorieBelowTarget
	CalorieAboveTarget
)

func (l CalorieLevel) String() string {
	switch l {
	case CalorieAppropriate:
		return "appropriate"
	case CalorieBelowTarget:
		return "below_target"
	case CalorieAboveTarget:
		return "above_target"
	}
	return "unknown"
}

// ExerciseLevel classifies calories burned against a recommended band.
type ExerciseLevel int

const (
	ExerciseGood ExerciseLevel = iota
	ExerciseFair
	ExerciseTooLittle
	ExerciseTooMuch
)

func (l ExerciseLevel) String() string {
	switch l {
	case ExerciseGood:
		return "good"
	case ExerciseFair:
		return "fair"
	case ExerciseTooLittle:
		return "too_little"
	case ExerciseTooMuch:
		return "too_much"
	}
	return "unknown"
}

// DayLevel is the combined verdict for a day.
type DayLevel int

const (
	DayExcellent DayLevel = iota
	DayGood
	DayFair
	DayNeedsImprovement
)

func (l DayLevel) String() string {
	switch l {
	case DayExcellent:
		return "excellent"
	case DayGood:
		return "good"
	case DayFair:
		return "fair"
	case DayNeedsImprovement:
		return "needs_improvement"
	}
	return "unknown"
}

// Labels maps level tags to display strings. Rendering consumes the tag, never
// a free-form string; the mapping is supplied by the caller so the engine
// stays locale-agnostic.
type Labels struct {
	Calorie  map[CalorieLevel]string
	Exercise map[ExerciseLevel]string
	Day      map[DayLevel]string
}

// Thresholds holds the tunable classification bands.
//
// Net calories within [CalorieLowerRatio, CalorieUpperRatio] of the target
// energy are appropriate. Exercise calories within
// [ExerciseLowCalories, ExerciseHighCalories] are good; below the low bound
// but within ExerciseFairBandRatio of it is fair, further below is too little,
// and above the high bound is too much.
type Thresholds struct {
	CalorieLowerRatio     float64
	CalorieUpperRatio     float64
	ExerciseLowCalories   float64
	ExerciseHighCalories  float64
	ExerciseFairBandRatio float64
}

// DefaultThresholds are starting-point bands; products are expected to tune
// them per deployment.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CalorieLowerRatio:     0.9,
		CalorieUpperRatio:     1.1,
		ExerciseLowCalories:   200,
		ExerciseHighCalories:  800,
		ExerciseFairBandRatio: 0.5,
	}
}

// Validate checks the bands are usable.
func (t Thresholds) Validate() error {
	if t.CalorieLowerRatio <= 0 || t.CalorieUpperRatio <= 0 {
		return fmt.Errorf("%w: calorie ratios must be positive", ErrInvalidInput)
	}
	if t.CalorieLowerRatio > t.CalorieUpperRatio {
		return fmt.Errorf("%w: calorie lower ratio exceeds upper ratio", ErrInvalidInput)
	}
	if t.ExerciseLowCalories < 0 || t.ExerciseHighCalories < t.ExerciseLowCalories {
		return fmt.Errorf("%w: exercise band is inverted", ErrInvalidInput)
	}
	if t.ExerciseFairBandRatio < 0 || t.ExerciseFairBandRatio > 1 {
		return fmt.Errorf("%w: exercise fair band ratio must be in [0,1]", ErrInvalidInput)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ClassifyCalories places net calories relative to the target energy
// expenditure. The target must be positive.
func ClassifyCalories(netCalories, targetEnergy float64, t Thresholds) (CalorieLevel, error) {
	if !finite(netCalories, targetEnergy) {
		return 0, fmt.Errorf("%w: net calories and target must be finite", ErrInvalidInput)
	}
	if targetEnergy <= 0 {
		return 0, fmt.Errorf("%w: target energy must be positive", ErrInvalidInput)
	}
	if err := t.Validate(); err != nil {
		return 0, err
	}

	switch {
	case netCalories < targetEnergy*t.CalorieLowerRatio:
		return CalorieBelowTarget, nil
	case netCalories > targetEnergy*t.CalorieUpperRatio:
		return CalorieAboveTarget, nil
	default:
		return CalorieAppropriate, nil
	}
}

// ClassifyExercise places calories burned in the recommended activity band.
func ClassifyExercise(caloriesBurned float64, t Thresholds) (ExerciseLevel, error) {
	if !finite(caloriesBurned) {
		return 0, fmt.Errorf("%w: calories burned must be finite", ErrInvalidInput)
	}
	if caloriesBurned < 0 {
		return 0, fmt.Errorf("%w: calories burned must be non-negative", ErrInvalidInput)
	}
	if err := t.Validate(); err != nil {
		return 0, err
	}

	fairFloor := t.ExerciseLowCalories * (1 - t.ExerciseFairBandRatio)
	switch {
	case caloriesBurned > t.ExerciseHighCalories:
		return ExerciseTooMuch, nil
	case caloriesBurned >= t.ExerciseLowCalories:
		return ExerciseGood, nil
	case caloriesBurned >= fairFloor:
		return ExerciseFair, nil
	default:
		return ExerciseTooLittle, nil
	}
}

// dayTable is the exhaustive combination of the two signals. Rows are calorie
// levels, columns are exercise levels.
var dayTable = map[CalorieLevel]map[ExerciseLevel]DayLevel{
	CalorieAppropriate: {
		ExerciseGood:      DayExcellent,
		ExerciseFair:      DayGood,
		ExerciseTooLittle: DayFair,
		ExerciseTooMuch:   DayFair,
	},
	CalorieBelowTarget: {
		ExerciseGood:      DayGood,
		ExerciseFair:      DayFair,
		ExerciseTooLittle: DayNeedsImprovement,
		ExerciseTooMuch:   DayFair,
	},
	CalorieAboveTarget: {
		ExerciseGood:      DayGood,
		ExerciseFair:      DayFair,
		ExerciseTooLittle: DayNeedsImprovement,
		ExerciseTooMuch:   DayNeedsImprovement,
	},
}

// CombineDay maps the two signals to a single day verdict. The table is total
// over all 3x4 combinations; unknown tags are rejected.
func CombineDay(c CalorieLevel, e ExerciseLevel) (DayLevel, error) {
	row, ok := dayTable[c]
	if !ok {
		return 0, fmt.Errorf("%w: unknown calorie level %d", ErrInvalidInput, c)
	}
	day, ok := row[e]
	if !ok {
		return 0, fmt.Errorf("%w: unknown exercise level %d", ErrInvalidInput, e)
	}
	return day, nil
}
