package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitalog-app/backend/internal/history"
	"github.com/vitalog-app/backend/internal/models"
	"github.com/vitalog-app/backend/internal/service"
	"github.com/vitalog-app/backend/internal/types"
)

const dateLayout = "2006-01-02"

// EntryHandler handles daily entry requests
type EntryHandler struct {
	entryService service.IEntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService service.IEntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// RegisterRoutes registers the entry routes
func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.GET("", h.ListEntries)
		entries.GET("/:date", h.GetEntry)
		entries.PUT("", h.UpsertEntry)
		entries.DELETE("/:id", h.DeleteEntry)
		entries.POST("/:id/food", h.AddFoodItem)
		entries.DELETE("/:id/food/:itemID", h.RemoveFoodItem)
		entries.POST("/:id/exercise", h.AddExerciseItem)
		entries.DELETE("/:id/exercise/:itemID", h.RemoveExerciseItem)
	}
}

// ListEntries returns the user's entries, newest first.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.entryService.ListEntries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": history.SortedByDateDescending(entries)})
}

// GetEntry returns the entry for one date with its children and summary.
func (h *EntryHandler) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := time.Parse(dateLayout, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	entry, err := h.entryService.GetEntry(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// UpsertEntry logs body metrics for a date, updating an existing entry in
// place when the date was already logged.
func (h *EntryHandler) UpsertEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	entry, err := h.entryService.UpsertEntry(c.Request.Context(), userID, date, req.WeightKg, req.HeightCm, req.BodyFatPct, req.WaterIntake)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes an entry together with its food, exercise and summary
// records.
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EntryHandler) AddFoodItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req types.AddFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.entryService.AddFoodItem(c.Request.Context(), userID, entryID, req.Name, req.Calories, req.Quantity, models.MealType(req.Meal))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *EntryHandler) RemoveFoodItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.entryService.RemoveFoodItem(c.Request.Context(), userID, entryID, itemID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EntryHandler) AddExerciseItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	var req types.AddExerciseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.entryService.AddExerciseItem(c.Request.Context(), userID, entryID, req.Name, req.DurationMin, req.CaloriesBurned)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *EntryHandler) RemoveExerciseItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.entryService.RemoveExerciseItem(c.Request.Context(), userID, entryID, itemID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
