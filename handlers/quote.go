package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogRepo "detailhq/database/repository/catalog"
	"detailhq/models"
	"detailhq/services/quote"
)

// QuoteHandler serves quote estimation for booking, lead, and invoicing flows.
type QuoteHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

func NewQuoteHandler(catalog catalogRepo.CatalogRepository, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{Catalog: catalog, Logger: logger}
}

// EstimateQuote handles POST /api/quotes/estimate.
func (h *QuoteHandler) EstimateQuote(c *gin.Context) {
	var body struct {
		BusinessID  string   `json:"businessId" binding:"required"`
		ServiceID   string   `json:"serviceId" binding:"required"`
		VehicleType string   `json:"vehicleType"`
		AddonIDs    []string `json:"addonIds"`
		ConditionID string   `json:"conditionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()

	svc, err := h.Catalog.GetService(ctx, body.ServiceID)
	if err != nil {
		h.Logger.Error("EstimateQuote: failed to load service", zap.String("serviceID", body.ServiceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load service"})
		return
	}

	// The condition config may legitimately be absent; the calculator
	// treats that as no markup.
	cfg, err := h.Catalog.GetConditionConfig(ctx, body.BusinessID)
	if err != nil {
		h.Logger.Error("EstimateQuote: failed to load condition config", zap.String("businessID", body.BusinessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load condition config"})
		return
	}

	addonDefs, err := h.Catalog.GetAddonsByIDs(ctx, body.AddonIDs)
	if err != nil {
		h.Logger.Error("EstimateQuote: failed to load addons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load addons"})
		return
	}
	addons := make([]models.SelectedAddon, 0, len(addonDefs))
	for _, a := range addonDefs {
		addons = append(addons, models.SelectedAddon{
			ID:              a.ID,
			Price:           a.Price,
			DurationMinutes: a.DurationMinutes,
		})
	}

	result, err := quote.CalculateTotals(svc, body.VehicleType, addons, body.ConditionID, cfg)
	if err != nil {
		var verr *quote.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found", "details": verr.Message})
			return
		}
		h.Logger.Error("EstimateQuote: calculation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "quote calculation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
