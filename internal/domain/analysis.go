package domain

import (
	"context"
	"sort"
)

// TokenSet is a set of normalized word tokens.
type TokenSet map[string]struct{}

// Contains reports whether the token is in the set.
func (s TokenSet) Contains(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Sorted returns the tokens as a sorted slice for stable output.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for tok := range s {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the tokens present in both sets.
func (s TokenSet) Intersect(other TokenSet) TokenSet {
	out := make(TokenSet)
	for tok := range s {
		if other.Contains(tok) {
			out[tok] = struct{}{}
		}
	}
	return out
}

// Diff returns the tokens in s that are absent from other.
func (s TokenSet) Diff(other TokenSet) TokenSet {
	out := make(TokenSet)
	for tok := range s {
		if !other.Contains(tok) {
			out[tok] = struct{}{}
		}
	}
	return out
}

// AnalyzedText is the normalized view of one input text: the lowercased
// raw text for substring scans, the token set for matching, and the
// word count for length-based sub-scores.
type AnalyzedText struct {
	Lower     string
	Tokens    TokenSet
	WordCount int
}

// MatchResult is the outcome of scoring a resume against a job
// description. MatchedKeywords is always a subset of the intersection
// of the two token sets; MissingKeywords is jd tokens minus resume
// tokens. Score is clamped to [0,100], two-decimal precision.
type MatchResult struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// SkillProfile holds fixed-vocabulary detections for one resume.
type SkillProfile struct {
	DetectedSkills   []string `json:"detected_skills"`
	DetectedLocation string   `json:"detected_location"`
}

// Recommendation is one scored catalog entry, derived per request.
type Recommendation struct {
	Title           string   `json:"title"`
	Location        string   `json:"location"`
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// Report is the full analysis result returned to the caller.
type Report struct {
	Score            float64          `json:"score"`
	MatchedKeywords  []string         `json:"matched_keywords"`
	MissingKeywords  []string         `json:"missing_keywords"`
	DetectedLocation string           `json:"detected_location"`
	DetectedSkills   []string         `json:"detected_skills"`
	Recommendations  []Recommendation `json:"recommendations"`
	Tips             []string         `json:"tips"`
}

// AnalyzeInput carries one analysis request through the pipeline.
type AnalyzeInput struct {
	Document          Document
	JobDescription    string `validate:"required,max=50000,printable_text"`
	PreferredLocation string `validate:"max=200,printable_text"`
}

// ============================================================================
// Component Interfaces
// ============================================================================

// TextExtractor turns a document into plain text. An empty string with
// a nil error means extraction ran but found nothing usable.
type TextExtractor interface {
	Extract(ctx context.Context, doc Document) (string, error)
}

// MatchStrategy scores a resume against a job description. Two
// implementations exist (set overlap and tf-idf cosine), selected by
// configuration behind this one interface.
type MatchStrategy interface {
	Match(resume, jd AnalyzedText) MatchResult
}

// Recommender ranks the static job catalog against a resume.
type Recommender interface {
	Recommend(resume AnalyzedText, locationFilter string) []Recommendation
}

// AnalysisUsecase is the single entry point the delivery layer calls.
type AnalysisUsecase interface {
	Analyze(ctx context.Context, input *AnalyzeInput) (*Report, error)
	AnalyzeToPDF(ctx context.Context, input *AnalyzeInput) ([]byte, error)
	Catalog() []JobPosting
}
