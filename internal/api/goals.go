package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalog-app/backend/internal/history"
	"github.com/vitalog-app/backend/internal/metrics"
	"github.com/vitalog-app/backend/internal/models"
	"github.com/vitalog-app/backend/internal/service"
	"github.com/vitalog-app/backend/internal/types"
)

// GoalHandler handles goal lifecycle requests
type GoalHandler struct {
	goalService  service.IGoalService
	entryService service.IEntryService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService service.IGoalService, entryService service.IEntryService) *GoalHandler {
	return &GoalHandler{
		goalService:  goalService,
		entryService: entryService,
	}
}

// RegisterRoutes registers the goal routes
func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.ListGoals)
		goals.GET("/:id", h.GetGoal)
		goals.POST("", h.CreateGoal)
		goals.PUT("/:id/progress", h.UpdateProgress)
		goals.POST("/:id/abandon", h.AbandonGoal)
	}
}

func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]types.GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = h.goalResponse(g)
	}
	c.JSON(http.StatusOK, gin.H{"goals": out})
}

func (h *GoalHandler) GetGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.goalResponse(*goal))
}

// CreateGoal creates a goal. When the request omits a start value the latest
// logged entry seeds it.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	targetDate, err := time.Parse(dateLayout, req.TargetDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target date, expected YYYY-MM-DD"})
		return
	}

	goalType := models.GoalType(req.Type)

	var startValue float64
	if req.StartValue != nil {
		startValue = *req.StartValue
	} else {
		startValue, err = h.baselineFor(c, userID, goalType)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, goalType, startValue, req.TargetValue, targetDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.goalResponse(*goal))
}

func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	var req types.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.goalService.UpdateProgress(c.Request.Context(), userID, goalID, req.CurrentValue)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.goalResponse(*goal))
}

func (h *GoalHandler) AbandonGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}

	goal, err := h.goalService.AbandonGoal(c.Request.Context(), userID, goalID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.goalResponse(*goal))
}

// baselineFor seeds a goal start value from the user's latest entry.
func (h *GoalHandler) baselineFor(c *gin.Context, userID uuid.UUID, goalType models.GoalType) (float64, error) {
	entries, err := h.entryService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		return 0, err
	}
	latest := history.LatestEntry(entries)
	if latest == nil {
		return 0, service.ErrNotFound
	}

	switch goalType {
	case models.GoalWeight:
		return latest.WeightKg, nil
	case models.GoalBMI:
		bmi, err := metrics.ComputeBMI(latest.WeightKg, latest.HeightCm)
		if err != nil {
			return 0, err
		}
		return metrics.RoundHalfUp(bmi, 2), nil
	case models.GoalBodyFat:
		return latest.BodyFatPct, nil
	case models.GoalWaterIntake:
		return latest.WaterIntake, nil
	}
	return 0, service.ErrInvalidInput
}

func (h *GoalHandler) goalResponse(g models.Goal) types.GoalResponse {
	return types.GoalResponse{
		ID:            g.ID,
		Type:          string(g.Type),
		Unit:          g.Type.Unit(),
		StartValue:    g.StartValue,
		CurrentValue:  g.CurrentValue,
		TargetValue:   g.TargetValue,
		StartDate:     g.StartDate,
		TargetDate:    g.TargetDate,
		Status:        string(g.Status),
		Increasing:    g.Increasing(),
		RemainingDays: h.goalService.RemainingDays(g.TargetDate),
	}
}
