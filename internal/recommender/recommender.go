// Package recommender ranks the static job catalog against a resume,
// reusing the keyword matcher as the scoring primitive.
package recommender

import (
	"math"
	"sort"
	"strings"

	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/internal/textproc"
)

// Recommender scores each catalog posting against the resume token
// set. A preferred-location mismatch is penalized, never excluded.
type Recommender struct {
	catalog         []domain.JobPosting
	strategy        domain.MatchStrategy
	normalizer      *textproc.Normalizer
	locationPenalty float64
	topN            int
}

func New(catalog []domain.JobPosting, strategy domain.MatchStrategy, normalizer *textproc.Normalizer, locationPenalty float64, topN int) *Recommender {
	if locationPenalty <= 0 || locationPenalty > 1 {
		locationPenalty = 0.7
	}
	if topN <= 0 {
		topN = 5
	}
	return &Recommender{
		catalog:         catalog,
		strategy:        strategy,
		normalizer:      normalizer,
		locationPenalty: locationPenalty,
		topN:            topN,
	}
}

func (r *Recommender) Recommend(resume domain.AnalyzedText, locationFilter string) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(r.catalog))
	filter := strings.ToLower(strings.TrimSpace(locationFilter))

	for _, posting := range r.catalog {
		jd := r.normalizer.Analyze(strings.Join(posting.RequiredKeywords, " "))
		result := r.strategy.Match(resume, jd)

		score := result.Score
		if filter != "" && !strings.Contains(strings.ToLower(posting.Location), filter) {
			score = math.Round(score*r.locationPenalty*100) / 100
		}

		recs = append(recs, domain.Recommendation{
			Title:           posting.Title,
			Location:        posting.Location,
			Score:           score,
			MatchedKeywords: result.MatchedKeywords,
		})
	}

	// Stable sort keeps catalog order on ties.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > r.topN {
		recs = recs[:r.topN]
	}
	return recs
}
