package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"detailhq/cron"
	catalogRepo "detailhq/database/repository/catalog"
	"detailhq/models"
	"detailhq/services/vision"
)

// AnalysisHandler serves photo condition analysis and addon suggestions.
type AnalysisHandler struct {
	Aggregator *vision.Aggregator
	Cache      *vision.SummaryCache
	Catalog    catalogRepo.CatalogRepository
	Queue      *asynq.Client
	Logger     *zap.Logger
}

func NewAnalysisHandler(
	agg *vision.Aggregator,
	cache *vision.SummaryCache,
	catalog catalogRepo.CatalogRepository,
	queue *asynq.Client,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		Aggregator: agg,
		Cache:      cache,
		Catalog:    catalog,
		Queue:      queue,
		Logger:     logger,
	}
}

type analyzeRequest struct {
	Photos []models.PhotoUpload `json:"photos" binding:"required"`
}

func decodeUploads(uploads []models.PhotoUpload) ([]models.PhotoInput, error) {
	photos := make([]models.PhotoInput, 0, len(uploads))
	for _, upload := range uploads {
		photo, err := upload.Decode()
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, nil
}

// AnalyzePhotos handles POST /api/analysis/photos, running the full
// aggregation synchronously.
func (h *AnalysisHandler) AnalyzePhotos(c *gin.Context) {
	var body analyzeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	photos, err := decodeUploads(body.Photos)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo encoding", "details": err.Error()})
		return
	}

	summary, err := h.Aggregator.Aggregate(c.Request.Context(), photos)
	if err != nil {
		var verr *vision.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		var extErr *vision.ExternalServiceError
		if errors.As(err, &extErr) {
			h.Logger.Error("AnalyzePhotos: analysis failed for all photos", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "vehicle condition analysis is unavailable"})
			return
		}
		h.Logger.Error("AnalyzePhotos: unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// EnqueueAnalysis handles POST /api/analysis/enqueue, queuing the analysis
// for the background worker and returning an id to poll.
func (h *AnalysisHandler) EnqueueAnalysis(c *gin.Context) {
	var body analyzeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if len(body.Photos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no photos to analyze"})
		return
	}

	analysisID := uuid.New().String()
	task, err := cron.NewAnalysisTask(analysisID, body.Photos)
	if err != nil {
		h.Logger.Error("EnqueueAnalysis: failed to build task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue analysis"})
		return
	}
	if _, err := h.Queue.EnqueueContext(c.Request.Context(), task); err != nil {
		h.Logger.Error("EnqueueAnalysis: failed to enqueue task", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue analysis"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"analysisId": analysisID})
}

// GetAnalysis handles GET /api/analysis/:id, returning the cached summary of
// a queued analysis.
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	id := c.Param("id")

	summary, err := h.Cache.Get(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("GetAnalysis: cache lookup failed", zap.String("analysisID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch analysis"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found or still running"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// SuggestAddons handles POST /api/analysis/suggestions, mapping detected
// issues onto the business's addon catalog.
func (h *AnalysisHandler) SuggestAddons(c *gin.Context) {
	var body struct {
		BusinessID string            `json:"businessId" binding:"required"`
		Issues     []models.IssueTag `json:"issues" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	candidates, err := h.Catalog.ListActiveAddons(c.Request.Context(), body.BusinessID)
	if err != nil {
		h.Logger.Error("SuggestAddons: failed to fetch addons", zap.String("businessID", body.BusinessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch addons"})
		return
	}

	c.JSON(http.StatusOK, vision.SuggestAddons(body.Issues, candidates))
}
