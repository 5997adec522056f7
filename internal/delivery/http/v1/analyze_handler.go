package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-analyzer/internal/delivery/http/response"
	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/pkg/apperror"
)

type AnalyzeHandler struct {
	analysisUC domain.AnalysisUsecase
}

func NewAnalyzeHandler(r *gin.RouterGroup, uc domain.AnalysisUsecase) {
	handler := &AnalyzeHandler{analysisUC: uc}

	r.POST("/analyze", handler.Analyze)
	r.POST("/analyze/report", handler.AnalyzeReport)
}

// Analyze scores an uploaded resume against a job description.
// Accepts multipart/form-data: "resume" (PDF/DOCX file),
// "job_description" (text), optional "location" (text).
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	report, err := h.analysisUC.Analyze(c.Request.Context(), input)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Resume analyzed", report)
}

// AnalyzeReport runs the same analysis and returns the report as a
// downloadable PDF.
func (h *AnalyzeHandler) AnalyzeReport(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	pdf, err := h.analysisUC.AnalyzeToPDF(c.Request.Context(), input)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *AnalyzeHandler) bindInput(c *gin.Context) (*domain.AnalyzeInput, bool) {
	jobDescription := c.PostForm("job_description")
	location := c.PostForm("location")

	file, err := c.FormFile("resume")
	if err != nil || jobDescription == "" {
		response.Error(c, http.StatusBadRequest, domain.ErrMalformedInput.Error(), nil)
		return nil, false
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(fmt.Errorf("opening upload: %w", err)))
		return nil, false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.Internal(fmt.Errorf("reading upload: %w", err)))
		return nil, false
	}

	return &domain.AnalyzeInput{
		Document:          domain.NewDocument(file.Filename, data),
		JobDescription:    jobDescription,
		PreferredLocation: location,
	}, true
}

// renderError maps domain sentinels onto HTTP statuses. Extraction
// failure is surfaced distinctly from a low score, never as 0/100.
func (h *AnalyzeHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		response.Error(c, http.StatusBadRequest, domain.ErrMalformedInput.Error(), nil)
	case errors.Is(err, domain.ErrUnsupportedFormat):
		response.Error(c, http.StatusUnsupportedMediaType, domain.ErrUnsupportedFormat.Error(), nil)
	case errors.Is(err, domain.ErrExtractionFailed):
		response.Error(c, http.StatusUnprocessableEntity, domain.ErrExtractionFailed.Error(), nil)
	default:
		c.Error(apperror.Internal(err))
	}
}
