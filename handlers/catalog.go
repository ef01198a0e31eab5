package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogRepo "detailhq/database/repository/catalog"
	"detailhq/services/quote"
)

// CatalogHandler exposes the service catalog with display pricing.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Logger: logger}
}

// serviceListing augments a catalog entry with its "starting at" price.
type serviceListing struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	StartingPrice float64 `json:"startingPrice"`
}

// ListServices handles GET /api/catalog/:businessID/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	businessID := c.Param("businessID")

	services, err := h.Catalog.ListActiveServices(c.Request.Context(), businessID)
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}

	listings := make([]serviceListing, 0, len(services))
	for _, svc := range services {
		listings = append(listings, serviceListing{
			ID:            svc.ID,
			Name:          svc.Name,
			Description:   svc.Description,
			StartingPrice: quote.ResolveStartingPrice(&svc),
		})
	}

	c.JSON(http.StatusOK, listings)
}

// GetService handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	id := c.Param("id")

	svc, err := h.Catalog.GetService(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("GetService: failed to fetch service", zap.String("serviceID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListAddons handles GET /api/catalog/:businessID/addons.
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	businessID := c.Param("businessID")

	addons, err := h.Catalog.ListActiveAddons(c.Request.Context(), businessID)
	if err != nil {
		h.Logger.Error("ListAddons: failed to fetch addons", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch addons"})
		return
	}

	c.JSON(http.StatusOK, addons)
}
