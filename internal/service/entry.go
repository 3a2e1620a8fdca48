package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vitalog-app/backend/internal/metrics"
	"github.com/vitalog-app/backend/internal/models"
	"github.com/vitalog-app/backend/internal/status"
)

// EntryService owns daily entries and their food/exercise children. Every
// write recomputes the entry's calorie summary so it never drifts from the
// items it is derived from.
type EntryService struct {
	db         *gorm.DB
	thresholds status.Thresholds
	cache      *SummaryCache
}

// Ensure EntryService implements IEntryService
var _ IEntryService = (*EntryService)(nil)

// NewEntryService creates a new EntryService instance. cache may be nil when
// no Redis is configured.
func NewEntryService(db *gorm.DB, thresholds status.Thresholds, cache *SummaryCache) *EntryService {
	return &EntryService{
		db:         db,
		thresholds: thresholds,
		cache:      cache,
	}
}

// Day truncates t to midnight UTC. Entries are keyed by day, never by
// time-of-day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UpsertEntry creates the entry for (userID, date) or updates it in place.
func (s *EntryService) UpsertEntry(ctx context.Context, userID uuid.UUID, date time.Time, weightKg, heightCm, bodyFatPct, waterIntake float64) (*models.DailyEntry, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return nil, fmt.Errorf("%w: weight and height must be positive", ErrInvalidInput)
	}
	if bodyFatPct < 0 || bodyFatPct > 100 {
		return nil, fmt.Errorf("%w: body fat must be between 0 and 100", ErrInvalidInput)
	}
	if waterIntake < 0 {
		return nil, fmt.Errorf("%w: water intake must be non-negative", ErrInvalidInput)
	}

	day := Day(date)

	var entry models.DailyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.DailyEntry{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        day,
			WeightKg:    weightKg,
			HeightCm:    heightCm,
			BodyFatPct:  bodyFatPct,
			WaterIntake: waterIntake,
		}
		if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		entry.WeightKg = weightKg
		entry.HeightCm = heightCm
		entry.BodyFatPct = bodyFatPct
		entry.WaterIntake = waterIntake
		if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, userID, day)
	return &entry, nil
}

// GetEntry retrieves the entry for one date with its children loaded.
func (s *EntryService) GetEntry(ctx context.Context, userID uuid.UUID, date time.Time) (*models.DailyEntry, error) {
	var entry models.DailyEntry
	err := s.db.WithContext(ctx).
		Preload("FoodItems").
		Preload("ExerciseItems").
		Preload("Summary").
		Where("user_id = ? AND date = ?", userID, Day(date)).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns all of a user's entries with children loaded. Order is
// unspecified; callers sort through the history package.
func (s *EntryService) ListEntries(ctx context.Context, userID uuid.UUID) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	if err := s.db.WithContext(ctx).
		Preload("FoodItems").
		Preload("ExerciseItems").
		Preload("Summary").
		Where("user_id = ?", userID).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteEntry removes an entry and the child records it owns.
func (s *EntryService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := s.entryByID(ctx, userID, entryID)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_entry_id = ?", entry.ID).Delete(&models.FoodItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("daily_entry_id = ?", entry.ID).Delete(&models.ExerciseItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("daily_entry_id = ?", entry.ID).Delete(&models.CalorieSummary{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.DailyEntry{}, "id = ?", entry.ID).Error
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, userID, entry.Date)
	return nil
}

// AddFoodItem appends a food line to an entry and recomputes its summary.
func (s *EntryService) AddFoodItem(ctx context.Context, userID, entryID uuid.UUID, name string, calories float64, quantity int, meal models.MealType) (*models.FoodItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	if calories < 0 {
		return nil, fmt.Errorf("%w: calories must be non-negative", ErrInvalidInput)
	}

	entry, err := s.entryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	item := models.FoodItem{
		ID:           uuid.New(),
		DailyEntryID: entry.ID,
		Name:         name,
		Calories:     calories,
		Quantity:     quantity,
		Meal:         meal,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}

	if err := s.RecomputeSummary(ctx, entry.ID); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID, entry.Date)
	return &item, nil
}

// RemoveFoodItem deletes a food line and recomputes the entry summary.
func (s *EntryService) RemoveFoodItem(ctx context.Context, userID, entryID, itemID uuid.UUID) error {
	entry, err := s.entryByID(ctx, userID, entryID)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Where("id = ? AND daily_entry_id = ?", itemID, entry.ID).
		Delete(&models.FoodItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	if err := s.RecomputeSummary(ctx, entry.ID); err != nil {
		return err
	}
	s.invalidate(ctx, userID, entry.Date)
	return nil
}

// AddExerciseItem appends an exercise session to an entry and recomputes its
// summary.
func (s *EntryService) AddExerciseItem(ctx context.Context, userID, entryID uuid.UUID, name string, durationMin int, caloriesBurned float64) (*models.ExerciseItem, error) {
	if caloriesBurned < 0 {
		return nil, fmt.Errorf("%w: calories burned must be non-negative", ErrInvalidInput)
	}
	if durationMin < 0 {
		return nil, fmt.Errorf("%w: duration must be non-negative", ErrInvalidInput)
	}

	entry, err := s.entryByID(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	item := models.ExerciseItem{
		ID:             uuid.New(),
		DailyEntryID:   entry.ID,
		Name:           name,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}

	if err := s.RecomputeSummary(ctx, entry.ID); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID, entry.Date)
	return &item, nil
}

// RemoveExerciseItem deletes an exercise session and recomputes the entry
// summary.
func (s *EntryService) RemoveExerciseItem(ctx context.Context, userID, entryID, itemID uuid.UUID) error {
	entry, err := s.entryByID(ctx, userID, entryID)
	if err != nil {
		return err
	}

	res := s.db.WithContext(ctx).
		Where("id = ? AND daily_entry_id = ?", itemID, entry.ID).
		Delete(&models.ExerciseItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	if err := s.RecomputeSummary(ctx, entry.ID); err != nil {
		return err
	}
	s.invalidate(ctx, userID, entry.Date)
	return nil
}

// RecomputeSummary rebuilds the calorie summary for an entry from its current
// food and exercise items. The summary row is upserted; it is a pure function
// of the children, never edited directly.
func (s *EntryService) RecomputeSummary(ctx context.Context, entryID uuid.UUID) error {
	var foods []models.FoodItem
	if err := s.db.WithContext(ctx).Where("daily_entry_id = ?", entryID).Find(&foods).Error; err != nil {
		return err
	}
	var exercises []models.ExerciseItem
	if err := s.db.WithContext(ctx).Where("daily_entry_id = ?", entryID).Find(&exercises).Error; err != nil {
		return err
	}

	totalFood, err := metrics.MealCalories(foods)
	if err != nil {
		return err
	}
	totalExercise, err := metrics.ExerciseCalories(exercises)
	if err != nil {
		return err
	}
	net := metrics.NetCalories(totalFood, totalExercise)

	summary := models.CalorieSummary{
		DailyEntryID:          entryID,
		TotalFoodCalories:     totalFood,
		TotalExerciseCalories: totalExercise,
		NetCalories:           net,
	}

	// Status tags are informative only here; classification against a target
	// needs the user's target energy, which the dashboard supplies. Exercise
	// status depends only on thresholds, so it is stored.
	if exLevel, err := status.ClassifyExercise(totalExercise, s.thresholds); err == nil {
		summary.ExerciseStatus = exLevel.String()
	}

	var existing models.CalorieSummary
	err = s.db.WithContext(ctx).Where("daily_entry_id = ?", entryID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		summary.ID = uuid.New()
		return s.db.WithContext(ctx).Create(&summary).Error
	case err != nil:
		return err
	default:
		summary.ID = existing.ID
		summary.CreatedAt = existing.CreatedAt
		return s.db.WithContext(ctx).Save(&summary).Error
	}
}

func (s *EntryService) entryByID(ctx context.Context, userID, entryID uuid.UUID) (*models.DailyEntry, error) {
	var entry models.DailyEntry
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) invalidate(ctx context.Context, userID uuid.UUID, date time.Time) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID, date)
	}
}
