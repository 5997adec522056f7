package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-analyzer/internal/detector"
	"go-resume-analyzer/internal/domain"
)

func TestDetectLocation(t *testing.T) {
	d := detector.NewDefault()

	t.Run("Should detect a city mentioned in free text", func(t *testing.T) {
		location := d.DetectLocation("Senior analyst currently based in Bangalore, Karnataka, open to relocation")
		assert.Equal(t, "Bangalore", location)
	})

	t.Run("Should return sentinel when no city is present", func(t *testing.T) {
		location := d.DetectLocation("Remote-first engineer with no fixed base")
		assert.Equal(t, domain.LocationNotFound, location)
	})

	t.Run("Should pick the first vocabulary city when several appear", func(t *testing.T) {
		// jaipur precedes delhi in the vocabulary
		location := d.DetectLocation("Worked in Delhi before moving to Jaipur")
		assert.Equal(t, "Jaipur", location)
	})

	t.Run("Should not match cities inside other words", func(t *testing.T) {
		d := detector.New(nil, []string{"pune"})
		assert.Equal(t, domain.LocationNotFound, d.DetectLocation("punctual and reliable"))
	})
}

func TestDetectSkills(t *testing.T) {
	d := detector.NewDefault()

	t.Run("Should detect generic skills including multi-word ones", func(t *testing.T) {
		skills := d.DetectSkills("Strong communication and problem solving; daily Python and SQL work")
		assert.Contains(t, skills, "communication")
		assert.Contains(t, skills, "problem solving")
		assert.Contains(t, skills, "python")
		assert.Contains(t, skills, "sql")
	})

	t.Run("Should return empty slice for unrelated text", func(t *testing.T) {
		assert.Empty(t, d.DetectSkills("unrelated prose about gardening"))
	})

	t.Run("Should preserve vocabulary order", func(t *testing.T) {
		skills := d.DetectSkills("sql before python alphabetically, but vocabulary order rules")
		assert.Equal(t, []string{"python", "sql"}, skills)
	})
}

func TestProfile(t *testing.T) {
	d := detector.NewDefault()

	profile := d.Profile("Data analysis specialist in Mumbai with Excel expertise")
	assert.Equal(t, "Mumbai", profile.DetectedLocation)
	assert.Contains(t, profile.DetectedSkills, "excel")
	assert.Contains(t, profile.DetectedSkills, "data analysis")
}
