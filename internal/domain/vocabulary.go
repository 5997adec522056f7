package domain

// Fixed vocabularies for presence scanning. Table literals so they can
// be extended without touching the scan logic.

// GenericSkills feed both the skill detector and the blended overlap
// strategy's skill sub-score.
var GenericSkills = []string{
	"communication", "teamwork", "leadership", "problem solving", "time management",
	"adaptability", "customer service", "chat support", "email support", "crm",
	"python", "sql", "excel", "data analysis", "sales", "marketing",
}

// Cities is the location vocabulary, scanned in order; the first hit
// wins.
var Cities = []string{
	"jaipur", "delhi", "bangalore", "mumbai", "noida", "pune", "hyderabad", "chennai",
}

// LocationNotFound is the sentinel returned when no city is detected.
const LocationNotFound = "Not mentioned"
