package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vitalog-app/backend/internal/history"
	"github.com/vitalog-app/backend/internal/metrics"
	"github.com/vitalog-app/backend/internal/models"
	"github.com/vitalog-app/backend/internal/service"
	"github.com/vitalog-app/backend/internal/status"
	"github.com/vitalog-app/backend/internal/types"
)

// defaultTargetEnergy is used when the client supplies no TDEE estimate.
const defaultTargetEnergy = 2000.0

// DashboardHandler serves derived metric bundles and chart series.
type DashboardHandler struct {
	entryService service.IEntryService
	thresholds   status.Thresholds
	cache        *service.SummaryCache
}

// NewDashboardHandler creates a new DashboardHandler. cache may be nil.
func NewDashboardHandler(entryService service.IEntryService, thresholds status.Thresholds, cache *service.SummaryCache) *DashboardHandler {
	return &DashboardHandler{
		entryService: entryService,
		thresholds:   thresholds,
		cache:        cache,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/metrics/:date", h.GetDayMetrics)
		dashboard.GET("/series/:field", h.GetSeries)
	}
}

// GetDayMetrics returns the derived bundle for one date: BMI with its
// category, calorie totals and shares, and the three status tags. The target
// energy expenditure comes from the optional `target` query parameter.
func (h *DashboardHandler) GetDayMetrics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	target := defaultTargetEnergy
	if raw := c.Query("target"); raw != "" {
		target, err = strconv.ParseFloat(raw, 64)
		if err != nil || target <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target must be a positive number"})
			return
		}
	}

	// target-dependent statuses make the cache valid only for the default
	if h.cache != nil && target == defaultTargetEnergy {
		if bundle := h.cache.Get(c.Request.Context(), userID, date); bundle != nil {
			c.JSON(http.StatusOK, bundle)
			return
		}
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	bundle, err := h.buildBundle(entry, target)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cache != nil && target == defaultTargetEnergy {
		h.cache.Set(c.Request.Context(), userID, date, bundle)
	}
	c.JSON(http.StatusOK, bundle)
}

// GetSeries returns a chart-ready label/value series for one field.
func (h *DashboardHandler) GetSeries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	field := history.Field(c.Param("field"))
	if !field.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown series field"})
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"field":  field,
		"points": history.SeriesFor(entries, field),
	})
}

func (h *DashboardHandler) buildBundle(entry *models.DailyEntry, target float64) (*types.DayMetrics, error) {
	bmi, err := metrics.ComputeBMI(entry.WeightKg, entry.HeightCm)
	if err != nil {
		return nil, err
	}
	category := metrics.CategoryForBMI(bmi)

	totalFood, err := metrics.MealCalories(entry.FoodItems)
	if err != nil {
		return nil, err
	}
	totalExercise, err := metrics.ExerciseCalories(entry.ExerciseItems)
	if err != nil {
		return nil, err
	}
	net := metrics.NetCalories(totalFood, totalExercise)

	byMeal := map[models.MealType]float64{}
	for _, it := range entry.FoodItems {
		byMeal[it.Meal] += it.LineCalories()
	}
	shares := make(map[string]int, len(byMeal))
	for meal, cals := range byMeal {
		shares[string(meal)] = metrics.MealSharePercent(cals, totalFood)
	}

	calLevel, err := status.ClassifyCalories(net, target, h.thresholds)
	if err != nil {
		return nil, err
	}
	exLevel, err := status.ClassifyExercise(totalExercise, h.thresholds)
	if err != nil {
		return nil, err
	}
	dayLevel, err := status.CombineDay(calLevel, exLevel)
	if err != nil {
		return nil, err
	}

	return &types.DayMetrics{
		Date:                  entry.Date.Format(dateLayout),
		BMI:                   metrics.RoundHalfUp(bmi, 2),
		BMICategory:           category.String(),
		BMISeverity:           category.Severity(),
		TotalFoodCalories:     totalFood,
		TotalExerciseCalories: totalExercise,
		NetCalories:           net,
		MealShares:            shares,
		CalorieStatus:         calLevel.String(),
		ExerciseStatus:        exLevel.String(),
		DayStatus:             dayLevel.String(),
	}, nil
}
