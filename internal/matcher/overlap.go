package matcher

import (
	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/internal/textproc"
)

// OverlapWeights are the blended sub-score caps. They are untuned
// defaults, not load-bearing constants; deployments may override them
// through configuration.
type OverlapWeights struct {
	Keyword float64 // cap of the jd-token overlap component
	Skill   float64 // cap of the generic-skills component
	Length  float64 // cap of the resume-length component

	// SkillPoints is awarded per detected generic skill, up to Skill.
	SkillPoints float64
	// LongResumeWords is the word count above which the full Length
	// component is granted; shorter non-empty resumes get half.
	LongResumeWords int
}

func DefaultOverlapWeights() OverlapWeights {
	return OverlapWeights{
		Keyword:         40,
		Skill:           30,
		Length:          30,
		SkillPoints:     10,
		LongResumeWords: 150,
	}
}

// Overlap is the set-overlap strategy: the jd-token overlap ratio
// scaled to the keyword cap, blended with a generic-skills sub-score
// and a length sub-score.
type Overlap struct {
	weights OverlapWeights
	skills  []string
}

func NewOverlap(weights OverlapWeights, skills []string) *Overlap {
	return &Overlap{weights: weights, skills: skills}
}

func (o *Overlap) Match(resume, jd domain.AnalyzedText) domain.MatchResult {
	// An empty job description scores zero outright, not a division
	// by zero.
	if len(jd.Tokens) == 0 {
		return domain.MatchResult{MatchedKeywords: []string{}, MissingKeywords: []string{}}
	}

	matched, missing := keywordSets(resume.Tokens, jd.Tokens)
	if len(resume.Tokens) == 0 {
		return domain.MatchResult{MatchedKeywords: matched, MissingKeywords: missing}
	}

	overlapRatio := float64(len(matched)) / float64(len(jd.Tokens))
	score := overlapRatio*o.weights.Keyword + o.skillScore(resume) + o.lengthScore(resume)

	return domain.MatchResult{
		Score:           clampScore(score),
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}

func (o *Overlap) skillScore(resume domain.AnalyzedText) float64 {
	var score float64
	for _, skill := range o.skills {
		if textproc.ContainsWord(resume.Lower, skill) {
			score += o.weights.SkillPoints
		}
	}
	if score > o.weights.Skill {
		score = o.weights.Skill
	}
	return score
}

func (o *Overlap) lengthScore(resume domain.AnalyzedText) float64 {
	switch {
	case resume.WordCount > o.weights.LongResumeWords:
		return o.weights.Length
	case resume.WordCount > 0:
		return o.weights.Length / 2
	default:
		return 0
	}
}
