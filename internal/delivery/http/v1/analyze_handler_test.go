package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "go-resume-analyzer/internal/delivery/http/v1"
	"go-resume-analyzer/internal/domain"
)

// stubUsecase returns canned results so handler tests exercise only
// binding and status mapping.
type stubUsecase struct {
	report *domain.Report
	pdf    []byte
	err    error
}

func (s *stubUsecase) Analyze(_ context.Context, _ *domain.AnalyzeInput) (*domain.Report, error) {
	return s.report, s.err
}

func (s *stubUsecase) AnalyzeToPDF(_ context.Context, _ *domain.AnalyzeInput) ([]byte, error) {
	return s.pdf, s.err
}

func (s *stubUsecase) Catalog() []domain.JobPosting {
	return domain.DefaultCatalog
}

func newTestRouter(uc domain.AnalysisUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/v1")
	v1.NewAnalyzeHandler(group, uc)
	v1.NewCatalogHandler(group, uc)
	return r
}

func multipartRequest(t *testing.T, path string, fields map[string]string, filename string, fileData []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAnalyzeEndpoint(t *testing.T) {
	uc := &stubUsecase{report: &domain.Report{
		Score:            61.54,
		MatchedKeywords:  []string{"python", "sql"},
		MissingKeywords:  []string{"tableau"},
		DetectedLocation: "Bangalore",
		Tips:             []string{"tip"},
	}}
	router := newTestRouter(uc)

	req := multipartRequest(t, "/v1/analyze",
		map[string]string{"job_description": "data analyst with python"},
		"resume.pdf", []byte("%PDF-1.4 data"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool          `json:"success"`
		Data    domain.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 61.54, body.Data.Score)
	assert.Equal(t, "Bangalore", body.Data.DetectedLocation)
}

func TestAnalyzeEndpointMissingFields(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	t.Run("No file attached", func(t *testing.T) {
		req := multipartRequest(t, "/v1/analyze",
			map[string]string{"job_description": "data analyst"}, "", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("No job description", func(t *testing.T) {
		req := multipartRequest(t, "/v1/analyze", nil, "resume.pdf", []byte("%PDF-1.4"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnalyzeEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"Malformed input", domain.ErrMalformedInput, http.StatusBadRequest},
		{"Unsupported format", domain.ErrUnsupportedFormat, http.StatusUnsupportedMediaType},
		{"Extraction failed", domain.ErrExtractionFailed, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubUsecase{err: tc.err})
			req := multipartRequest(t, "/v1/analyze",
				map[string]string{"job_description": "jd"}, "resume.pdf", []byte("%PDF-1.4"))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestAnalyzeReportEndpoint(t *testing.T) {
	router := newTestRouter(&stubUsecase{pdf: []byte("%PDF-1.4 rendered report")})

	req := multipartRequest(t, "/v1/analyze/report",
		map[string]string{"job_description": "data analyst"},
		"resume.pdf", []byte("%PDF-1.4 data"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "resume_report.pdf")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestCatalogEndpoint(t *testing.T) {
	router := newTestRouter(&stubUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []domain.JobPosting `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 5)
	assert.Equal(t, "Data Analyst", body.Data[1].Title)
}
