package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-resume-analyzer/internal/detector"
	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/internal/report"
	"go-resume-analyzer/internal/textproc"
	"go-resume-analyzer/pkg/logger"
	"go-resume-analyzer/pkg/validation"
)

// MinMeaningfulTextLen is the extracted-text length below which the
// request is reported as an extraction failure rather than scored.
const MinMeaningfulTextLen = 30

type analysisUsecase struct {
	extractor   domain.TextExtractor
	strategy    domain.MatchStrategy
	recommender domain.Recommender
	detector    *detector.Detector
	normalizer  *textproc.Normalizer
	assembler   *report.Assembler
	validate    *validator.Validate
	catalog     []domain.JobPosting

	minMeaningfulLen int
}

type AnalysisDeps struct {
	Extractor        domain.TextExtractor
	Strategy         domain.MatchStrategy
	Recommender      domain.Recommender
	Detector         *detector.Detector
	Normalizer       *textproc.Normalizer
	Assembler        *report.Assembler
	Validate         *validator.Validate
	Catalog          []domain.JobPosting
	MinMeaningfulLen int
}

func NewAnalysisUsecase(deps AnalysisDeps) domain.AnalysisUsecase {
	if deps.MinMeaningfulLen <= 0 {
		deps.MinMeaningfulLen = MinMeaningfulTextLen
	}
	return &analysisUsecase{
		extractor:        deps.Extractor,
		strategy:         deps.Strategy,
		recommender:      deps.Recommender,
		detector:         deps.Detector,
		normalizer:       deps.Normalizer,
		assembler:        deps.Assembler,
		validate:         deps.Validate,
		catalog:          deps.Catalog,
		minMeaningfulLen: deps.MinMeaningfulLen,
	}
}

// Analyze runs the full pipeline: extract, normalize, match, detect,
// recommend, assemble. All per-request state is local to this call.
func (u *analysisUsecase) Analyze(ctx context.Context, input *domain.AnalyzeInput) (*domain.Report, error) {
	if err := u.checkInput(input); err != nil {
		return nil, err
	}

	text, err := u.extractor.Extract(ctx, input.Document)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if len(text) < u.minMeaningfulLen {
		logger.Log.Info("extraction yielded insufficient text",
			"file", input.Document.Filename, "chars", len(text))
		return nil, domain.ErrExtractionFailed
	}

	resume := u.normalizer.Analyze(text)
	jd := u.normalizer.Analyze(input.JobDescription)

	match := u.strategy.Match(resume, jd)
	profile := u.detector.Profile(text)
	recs := u.recommender.Recommend(resume, input.PreferredLocation)
	tips := u.assembler.Tips(match, resume.WordCount)

	logger.Log.Info("resume analyzed",
		"file", input.Document.Filename,
		"score", match.Score,
		"matched", len(match.MatchedKeywords),
		"missing", len(match.MissingKeywords),
	)

	return u.assembler.Assemble(match, profile, recs, tips), nil
}

// AnalyzeToPDF runs Analyze and renders the downloadable rendition.
func (u *analysisUsecase) AnalyzeToPDF(ctx context.Context, input *domain.AnalyzeInput) ([]byte, error) {
	rep, err := u.Analyze(ctx, input)
	if err != nil {
		return nil, err
	}
	return report.RenderPDF(rep)
}

// Catalog exposes the read-only job catalog.
func (u *analysisUsecase) Catalog() []domain.JobPosting {
	return u.catalog
}

// checkInput rejects malformed submissions before any extraction work
// begins.
func (u *analysisUsecase) checkInput(input *domain.AnalyzeInput) error {
	if input == nil || len(input.Document.Data) == 0 || strings.TrimSpace(input.JobDescription) == "" {
		return domain.ErrMalformedInput
	}
	if err := u.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrMalformedInput,
			strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return nil
}
