// Package matcher scores a resume against a job description. Two
// strategies implement domain.MatchStrategy: a blended set-overlap
// scorer (default) and a tf-idf cosine-similarity scorer, selectable
// by configuration.
package matcher

import (
	"math"

	"go-resume-analyzer/internal/domain"
)

// keywordSets computes the shared matched/missing set algebra:
// matched = resume ∩ jd, missing = jd − resume.
func keywordSets(resume, jd domain.TokenSet) (matched, missing []string) {
	return jd.Intersect(resume).Sorted(), jd.Diff(resume).Sorted()
}

// clampScore bounds a score to [0,100] and rounds it to two decimal
// places for display.
func clampScore(score float64) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return math.Round(score*100) / 100
}
