package matcher

import (
	"math"

	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/internal/textproc"
)

// TFIDF is the vector-similarity strategy: term-frequency /
// inverse-document-frequency weighted vectors over the joint
// vocabulary of the two texts, scored by cosine similarity.
type TFIDF struct {
	minTokenLen int
}

func NewTFIDF(minTokenLen int) *TFIDF {
	if minTokenLen <= 0 {
		minTokenLen = textproc.DefaultMinTokenLen
	}
	return &TFIDF{minTokenLen: minTokenLen}
}

func (t *TFIDF) Match(resume, jd domain.AnalyzedText) domain.MatchResult {
	if len(jd.Tokens) == 0 {
		return domain.MatchResult{MatchedKeywords: []string{}, MissingKeywords: []string{}}
	}

	matched, missing := keywordSets(resume.Tokens, jd.Tokens)
	if len(resume.Tokens) == 0 {
		return domain.MatchResult{MatchedKeywords: matched, MissingKeywords: missing}
	}

	resumeTF := termFrequencies(resume.Lower, t.minTokenLen)
	jdTF := termFrequencies(jd.Lower, t.minTokenLen)

	vocab := make(map[string]struct{}, len(resumeTF)+len(jdTF))
	for term := range resumeTF {
		vocab[term] = struct{}{}
	}
	for term := range jdTF {
		vocab[term] = struct{}{}
	}

	var dot, resumeNorm, jdNorm float64
	for term := range vocab {
		idf := inverseDocFreq(resumeTF[term] > 0, jdTF[term] > 0)
		rw := float64(resumeTF[term]) * idf
		jw := float64(jdTF[term]) * idf
		dot += rw * jw
		resumeNorm += rw * rw
		jdNorm += jw * jw
	}

	var score float64
	if resumeNorm > 0 && jdNorm > 0 {
		score = dot / (math.Sqrt(resumeNorm) * math.Sqrt(jdNorm)) * 100
	}

	return domain.MatchResult{
		Score:           clampScore(score),
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}

// inverseDocFreq over a two-document corpus, smoothed so terms present
// in both texts still carry weight.
func inverseDocFreq(inResume, inJD bool) float64 {
	df := 0
	if inResume {
		df++
	}
	if inJD {
		df++
	}
	if df == 0 {
		return 0
	}
	return math.Log(2/float64(df)) + 1
}

func termFrequencies(lowerText string, minTokenLen int) map[string]int {
	freqs := make(map[string]int)
	for _, word := range textproc.SplitWords(lowerText) {
		if len(word) < minTokenLen {
			continue
		}
		freqs[word]++
	}
	return freqs
}
