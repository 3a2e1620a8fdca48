// Package history turns collections of daily entries into time-ordered views
// and chart-ready series.
package history

import (
	"sort"

	"github.com/vitalog-app/backend/internal/metrics"
	"github.com/vitalog-app/backend/internal/models"
)

// Field selects which per-entry value a series is built from.
type Field string

const (
	FieldWeight      Field = "weight"
	FieldBMI         Field = "bmi"
	FieldBodyFat     Field = "body_fat"
	FieldWaterIntake Field = "water_intake"
)

// Valid reports whether f names a chartable field.
func (f Field) Valid() bool {
	switch f {
	case FieldWeight, FieldBMI, FieldBodyFat, FieldWaterIntake:
		return true
	}
	return false
}

// Point is one chart sample: a formatted date label and its value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// dateLabelLayout renders dates as day/month/2-digit-year, e.g. 02/01/06.
const dateLabelLayout = "02/01/06"

// SortedByDateDescending returns the entries ordered newest first. The sort is
// stable, so entries sharing a date keep their original relative order.
func SortedByDateDescending(entries []models.DailyEntry) []models.DailyEntry {
	out := make([]models.DailyEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// LatestEntry returns the entry with the maximum date, or nil if there are no
// entries. Used to seed a new goal's start value.
func LatestEntry(entries []models.DailyEntry) *models.DailyEntry {
	if len(entries) == 0 {
		return nil
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.Date.After(latest.Date) {
			latest = e
		}
	}
	return &latest
}

// SeriesFor builds a chart series for one field, oldest sample first. Samples
// whose value is zero are dropped: in this data model a zero reading means
// "not recorded", not a true zero. That convention is a known gap (a real
// zero is indistinguishable from missing) and is kept for compatibility.
func SeriesFor(entries []models.DailyEntry, field Field) []Point {
	ordered := SortedByDateDescending(entries)

	points := make([]Point, 0, len(ordered))
	// walk oldest to newest so charts read left to right
	for i := len(ordered) - 1; i >= 0; i-- {
		e := ordered[i]
		v, ok := fieldValue(e, field)
		if !ok || v == 0 {
			continue
		}
		points = append(points, Point{
			Label: e.Date.Format(dateLabelLayout),
			Value: v,
		})
	}
	return points
}

func fieldValue(e models.DailyEntry, field Field) (float64, bool) {
	switch field {
	case FieldWeight:
		return e.WeightKg, true
	case FieldBMI:
		bmi, err := metrics.ComputeBMI(e.WeightKg, e.HeightCm)
		if err != nil {
			return 0, false
		}
		return metrics.RoundHalfUp(bmi, 2), true
	case FieldBodyFat:
		return e.BodyFatPct, true
	case FieldWaterIntake:
		return e.WaterIntake, true
	}
	return 0, false
}
