package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-analyzer/internal/delivery/http/response"
	"go-resume-analyzer/internal/domain"
)

type CatalogHandler struct {
	analysisUC domain.AnalysisUsecase
}

func NewCatalogHandler(r *gin.RouterGroup, uc domain.AnalysisUsecase) {
	handler := &CatalogHandler{analysisUC: uc}
	r.GET("/jobs", handler.List)
}

// List returns the static job catalog used for recommendations.
func (h *CatalogHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Job catalog", h.analysisUC.Catalog())
}
