package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/domain"
	"github.com/pantrychef/backend/internal/refdata"
	"github.com/pantrychef/backend/internal/usecase"
)

const maxBatchItems = 200

// Handler holds dependencies for HTTP handlers
type Handler struct {
	validator *usecase.Validator
	converter *usecase.Converter
	refresher *usecase.RefreshService
	store     *refdata.Store
}

// NewHandler creates a new HTTP handler. refresher may be nil when no
// refresh pipeline is configured.
func NewHandler(
	validator *usecase.Validator,
	converter *usecase.Converter,
	refresher *usecase.RefreshService,
	store *refdata.Store,
) *Handler {
	return &Handler{
		validator: validator,
		converter: converter,
		refresher: refresher,
		store:     store,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        "pantrychef-backend",
		"version":        "1.0.0",
		"refdataVersion": h.store.Snapshot().Version,
	})
}

type validateRequest struct {
	FoodName string   `json:"foodName" binding:"required"`
	Unit     string   `json:"unit" binding:"required"`
	Quantity *float64 `json:"quantity,omitempty"`
}

// ValidateUnit checks a single (food, unit, quantity) tuple.
func (h *Handler) ValidateUnit(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodName and unit are required"})
		return
	}

	result := h.validator.Validate(req.FoodName, req.Unit, req.Quantity)
	c.JSON(http.StatusOK, result)
}

type batchValidateRequest struct {
	Items []domain.ValidationItem `json:"items" binding:"required"`
}

// ValidateBatch validates a list of items and returns an aggregate summary.
func (h *Handler) ValidateBatch(c *gin.Context) {
	var req batchValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items list is required"})
		return
	}
	if len(req.Items) > maxBatchItems {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many items in one batch"})
		return
	}

	summary := h.validator.ValidateMany(req.Items)
	c.JSON(http.StatusOK, summary)
}

type convertRequest struct {
	Quantity float64 `json:"quantity"`
	FromUnit string  `json:"fromUnit" binding:"required"`
	ToUnit   string  `json:"toUnit" binding:"required"`
	FoodName string  `json:"foodName,omitempty"`
}

// ConvertUnit converts a quantity between units. An unconvertible pair is a
// normal outcome, reported with convertible=false rather than an HTTP error.
func (h *Handler) ConvertUnit(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity, fromUnit and toUnit are required"})
		return
	}

	conversion, err := h.converter.Convert(req.Quantity, req.FromUnit, req.ToUnit, req.FoodName)
	if err != nil {
		var uc *domain.Unconvertible
		if errors.As(err, &uc) {
			c.JSON(http.StatusOK, gin.H{
				"convertible": false,
				"reason":      uc.Reason,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"convertible": true,
		"result":      conversion,
	})
}

// GetSuggestions returns the resolved category and suggested units for a food.
func (h *Handler) GetSuggestions(c *gin.Context) {
	foodName := c.Query("food")
	if foodName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'food' is required"})
		return
	}

	classification, units := h.validator.Suggestions(foodName)
	c.JSON(http.StatusOK, gin.H{
		"foodName":       foodName,
		"category":       classification.Category,
		"confidence":     classification.Confidence,
		"suggestedUnits": units,
	})
}

// ListCategories enumerates the loaded food categories and their rules.
func (h *Handler) ListCategories(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"version":    snap.Version,
		"categories": snap.Rules.AllCategories(),
	})
}

// RefreshReferenceData rebuilds the reference snapshot out of band.
func (h *Handler) RefreshReferenceData(c *gin.Context) {
	if h.refresher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "reference data refresh is not configured"})
		return
	}

	snap, err := h.refresher.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"version":        snap.Version,
		"categories":     len(snap.Rules.AllCategories()),
		"portionFactors": snap.PortionCount(),
	})
}
