package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/internal/matcher"
	"go-resume-analyzer/internal/textproc"
)

const (
	resumeText = "I have 3 years experience in SQL, Python and Excel reporting"
	jdText     = "Looking for a Data Analyst skilled in Python, SQL and Excel"
)

func strategies() map[string]domain.MatchStrategy {
	return map[string]domain.MatchStrategy{
		"overlap": matcher.NewOverlap(matcher.DefaultOverlapWeights(), domain.GenericSkills),
		"tfidf":   matcher.NewTFIDF(3),
	}
}

func TestMatchSetAlgebra(t *testing.T) {
	n := textproc.NewNormalizer(3)
	resume := n.Analyze(resumeText)
	jd := n.Analyze(jdText)

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			result := s.Match(resume, jd)

			// matched ⊆ resume ∩ jd
			for _, kw := range result.MatchedKeywords {
				assert.True(t, resume.Tokens.Contains(kw), "matched keyword %q must be in resume", kw)
				assert.True(t, jd.Tokens.Contains(kw), "matched keyword %q must be in jd", kw)
			}
			// missing = jd − resume, exactly
			assert.ElementsMatch(t, jd.Tokens.Diff(resume.Tokens).Sorted(), result.MissingKeywords)

			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 100.0)
		})
	}
}

func TestMatchScenario(t *testing.T) {
	n := textproc.NewNormalizer(3)
	s := matcher.NewOverlap(matcher.DefaultOverlapWeights(), domain.GenericSkills)

	result := s.Match(n.Analyze(resumeText), n.Analyze(jdText))

	assert.Subset(t, result.MatchedKeywords, []string{"python", "sql", "excel"})
	assert.Contains(t, result.MissingKeywords, "analyst")
	assert.Greater(t, result.Score, 50.0)
}

func TestMatchEmptyInputs(t *testing.T) {
	n := textproc.NewNormalizer(3)

	for name, s := range strategies() {
		t.Run(name+" empty jd", func(t *testing.T) {
			result := s.Match(n.Analyze(resumeText), n.Analyze(""))
			assert.Zero(t, result.Score)
			assert.Empty(t, result.MatchedKeywords)
			assert.Empty(t, result.MissingKeywords)
		})

		t.Run(name+" empty resume", func(t *testing.T) {
			jd := n.Analyze(jdText)
			result := s.Match(n.Analyze(""), jd)
			assert.Zero(t, result.Score)
			assert.Empty(t, result.MatchedKeywords)
			assert.ElementsMatch(t, jd.Tokens.Sorted(), result.MissingKeywords)
		})
	}
}

func TestOverlapMonotonicity(t *testing.T) {
	n := textproc.NewNormalizer(3)
	s := matcher.NewOverlap(matcher.DefaultOverlapWeights(), domain.GenericSkills)

	jd := n.Analyze(jdText)
	before := s.Match(n.Analyze(resumeText), jd)
	require.Contains(t, before.MissingKeywords, "analyst")

	// Adding a previously missing jd token must not decrease the score.
	after := s.Match(n.Analyze(resumeText+" analyst"), jd)
	assert.GreaterOrEqual(t, after.Score, before.Score)
	assert.Contains(t, after.MatchedKeywords, "analyst")
	assert.NotContains(t, after.MissingKeywords, "analyst")
}

func TestOverlapScoreIsCapped(t *testing.T) {
	n := textproc.NewNormalizer(3)
	s := matcher.NewOverlap(matcher.DefaultOverlapWeights(), domain.GenericSkills)

	// A resume that is a superset of the jd plus every generic skill and
	// plenty of length must still be bounded at 100.
	long := jdText + " communication teamwork leadership adaptability crm python sql excel sales marketing "
	for i := 0; i < 40; i++ {
		long += "additional relevant professional experience detail "
	}
	result := s.Match(n.Analyze(long), n.Analyze(jdText))
	assert.LessOrEqual(t, result.Score, 100.0)
	assert.Empty(t, result.MissingKeywords)
}

func TestTFIDFIdenticalTexts(t *testing.T) {
	n := textproc.NewNormalizer(3)
	s := matcher.NewTFIDF(3)

	result := s.Match(n.Analyze(jdText), n.Analyze(jdText))
	assert.InDelta(t, 100.0, result.Score, 0.01)
	assert.Empty(t, result.MissingKeywords)
}
