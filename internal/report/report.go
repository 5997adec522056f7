// Package report composes upstream analysis outputs into the final
// report and renders the downloadable PDF rendition. Pure formatting,
// no decision logic beyond the tip rule table.
package report

import (
	"fmt"
	"strings"

	"go-resume-analyzer/internal/domain"
)

// TipRules keys improvement tips on score thresholds and
// missing-keyword presence. Untuned defaults, overridable via config.
type TipRules struct {
	LowScoreThreshold float64
	ShortResumeWords  int
}

func DefaultTipRules() TipRules {
	return TipRules{LowScoreThreshold: 40, ShortResumeWords: 150}
}

type Assembler struct {
	missingDisplayCap int
	rules             TipRules
}

func NewAssembler(missingDisplayCap int, rules TipRules) *Assembler {
	if missingDisplayCap <= 0 {
		missingDisplayCap = 20
	}
	return &Assembler{missingDisplayCap: missingDisplayCap, rules: rules}
}

// Tips applies the deterministic rule table. At least one tip is
// always returned.
func (a *Assembler) Tips(match domain.MatchResult, resumeWordCount int) []string {
	var tips []string

	if match.Score < a.rules.LowScoreThreshold {
		tips = append(tips, "Add more job-specific keywords to align your resume with the job description")
	}
	if len(match.MissingKeywords) > 0 {
		preview := match.MissingKeywords
		if len(preview) > 3 {
			preview = preview[:3]
		}
		tips = append(tips, fmt.Sprintf("Naturally include missing keywords such as: %s", strings.Join(preview, ", ")))
	}
	if resumeWordCount <= a.rules.ShortResumeWords {
		tips = append(tips, "Quantify experience with numbers and expand your work history")
	}
	if len(tips) == 0 {
		tips = append(tips, "Improve your skills section with specific tools and platforms")
	}
	return tips
}

// Assemble composes the report losslessly, capping only the displayed
// missing-keyword list.
func (a *Assembler) Assemble(match domain.MatchResult, profile domain.SkillProfile, recs []domain.Recommendation, tips []string) *domain.Report {
	missing := match.MissingKeywords
	if len(missing) > a.missingDisplayCap {
		missing = missing[:a.missingDisplayCap]
	}

	return &domain.Report{
		Score:            match.Score,
		MatchedKeywords:  emptyIfNil(match.MatchedKeywords),
		MissingKeywords:  emptyIfNil(missing),
		DetectedLocation: profile.DetectedLocation,
		DetectedSkills:   emptyIfNil(profile.DetectedSkills),
		Recommendations:  recs,
		Tips:             tips,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
