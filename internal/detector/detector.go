// Package detector scans normalized text against the fixed skill and
// city vocabularies. This is a deliberately cheap presence test, no
// fuzzy matching.
package detector

import (
	"strings"

	"go-resume-analyzer/internal/domain"
	"go-resume-analyzer/internal/textproc"
)

type Detector struct {
	skills []string
	cities []string
}

func New(skills, cities []string) *Detector {
	return &Detector{skills: skills, cities: cities}
}

// NewDefault uses the built-in vocabularies.
func NewDefault() *Detector {
	return New(domain.GenericSkills, domain.Cities)
}

// DetectSkills returns every vocabulary skill present in the text, in
// vocabulary order.
func (d *Detector) DetectSkills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(d.skills))
	for _, skill := range d.skills {
		if textproc.ContainsWord(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// DetectLocation returns the first vocabulary city present in the
// text, title-cased, or the not-found sentinel. First match wins;
// ties break on vocabulary order.
func (d *Detector) DetectLocation(text string) string {
	lower := strings.ToLower(text)
	for _, city := range d.cities {
		if textproc.ContainsWord(lower, city) {
			return strings.ToUpper(city[:1]) + city[1:]
		}
	}
	return domain.LocationNotFound
}

// Profile runs both detections over one text.
func (d *Detector) Profile(text string) domain.SkillProfile {
	return domain.SkillProfile{
		DetectedSkills:   d.DetectSkills(text),
		DetectedLocation: d.DetectLocation(text),
	}
}
