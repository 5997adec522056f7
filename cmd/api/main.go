package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-resume-analyzer/config"
	v1 "go-resume-analyzer/internal/delivery/http/v1"
	"go-resume-analyzer/internal/detector"
	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/internal/extraction"
	"go-resume-analyzer/internal/matcher"
	"go-resume-analyzer/internal/recommender"
	"go-resume-analyzer/internal/report"
	"go-resume-analyzer/internal/textproc"
	"go-resume-analyzer/internal/usecase"
	"go-resume-analyzer/pkg/logger"
	"go-resume-analyzer/pkg/ocr"
	"go-resume-analyzer/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Debug)
	logger.Log.Info("Starting resume analyzer", "port", cfg.Port)

	// 3. Setup OCR collaborators (external tools, injected)
	ocrTimeout := time.Duration(cfg.OCRTimeoutSeconds) * time.Second
	tesseract := ocr.NewTesseract(cfg.TesseractPath, ocrTimeout)
	rasterizer := ocr.NewPdftoppm(cfg.PdftoppmPath, ocrTimeout)
	if !tesseract.Available() {
		logger.Log.Warn("tesseract binary not found - scanned PDFs will not be readable", "path", cfg.TesseractPath)
	}
	if !rasterizer.Available() {
		logger.Log.Warn("pdftoppm binary not found - scanned PDFs will not be readable", "path", cfg.PdftoppmPath)
	}

	// 4. Setup Pipeline Components
	extractor := extraction.New(tesseract, rasterizer, extraction.Options{
		MinDirectTextLen: cfg.MinDirectTextLen,
		OCRAlways:        cfg.OCRAlways,
	})

	normalizer := textproc.NewNormalizer(cfg.MinTokenLen)
	strategy := buildStrategy(cfg)
	skillDetector := detector.NewDefault()
	jobRecommender := recommender.New(domain.DefaultCatalog, strategy, normalizer, cfg.LocationPenalty, cfg.MaxRecommendations)
	assembler := report.NewAssembler(cfg.MissingDisplayCap, report.DefaultTipRules())

	// 5. Setup UseCase
	validate := validator.New()
	validation.RegisterValidators(validate)
	analysisUC := usecase.NewAnalysisUsecase(usecase.AnalysisDeps{
		Extractor:        extractor,
		Strategy:         strategy,
		Recommender:      jobRecommender,
		Detector:         skillDetector,
		Normalizer:       normalizer,
		Assembler:        assembler,
		Validate:         validate,
		Catalog:          domain.DefaultCatalog,
		MinMeaningfulLen: cfg.MinMeaningfulLen,
	})

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AnalysisUC: analysisUC,
		Config:     cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// buildStrategy selects the scoring strategy from configuration; both
// implement the same interface.
func buildStrategy(cfg *config.Config) domain.MatchStrategy {
	switch cfg.MatchStrategy {
	case "tfidf":
		return matcher.NewTFIDF(cfg.MinTokenLen)
	default:
		weights := matcher.DefaultOverlapWeights()
		weights.Keyword = cfg.KeywordWeight
		weights.Skill = cfg.SkillWeight
		weights.Length = cfg.LengthWeight
		return matcher.NewOverlap(weights, domain.GenericSkills)
	}
}
