package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-analyzer/config"
	"go-resume-analyzer/internal/delivery/http/middleware"
	"go-resume-analyzer/internal/delivery/http/response"
	"go-resume-analyzer/internal/domain"
)

type RouterDeps struct {
	AnalysisUC domain.AnalysisUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewCatalogHandler(v1, deps.AnalysisUC)

	// Uploads are size-capped before any extraction work begins.
	uploads := v1.Group("")
	uploads.Use(middleware.UploadLimit(deps.Config.MaxUploadBytes))
	{
		NewAnalyzeHandler(uploads, deps.AnalysisUC)
	}

	return r
}
