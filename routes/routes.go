package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"detailhq/handlers"
	"detailhq/utils"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Quote    *handlers.QuoteHandler
	Catalog  *handlers.CatalogHandler
	Analysis *handlers.AnalysisHandler
}

// RegisterQuoteRoutes registers quote estimation endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("/estimate", hb.Quote.EstimateQuote)
	}
}

// RegisterCatalogRoutes registers catalog browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/:businessID/services", hb.Catalog.ListServices)
		api.GET("/:businessID/services/:id", hb.Catalog.GetService)
		api.GET("/:businessID/addons", hb.Catalog.ListAddons)
	}
}

// RegisterAnalysisRoutes registers photo condition analysis endpoints.
func RegisterAnalysisRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/analysis")
	{
		api.POST("/photos", hb.Analysis.AnalyzePhotos)
		api.POST("/enqueue", hb.Analysis.EnqueueAnalysis)
		api.GET("/:id", hb.Analysis.GetAnalysis)
		api.POST("/suggestions", hb.Analysis.SuggestAddons)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAnalysisRoutes(r, hb)
	RegisterHealthRoute(r)
}
