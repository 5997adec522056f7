package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	Debug       bool

	// External tool paths (deployment configuration, not core behavior)
	TesseractPath string
	PdftoppmPath  string

	// Extraction policy
	OCRTimeoutSeconds int
	OCRAlways         bool
	MinDirectTextLen  int
	MinMeaningfulLen  int
	MaxUploadBytes    int64

	// Matching
	MatchStrategy string // "overlap" or "tfidf"
	MinTokenLen   int
	KeywordWeight float64
	SkillWeight   float64
	LengthWeight  float64

	// Recommendations & report
	LocationPenalty    float64
	MaxRecommendations int
	MissingDisplayCap  int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		Debug:       getEnvBool("DEBUG", false),

		TesseractPath: getEnv("TESSERACT_PATH", "tesseract"),
		PdftoppmPath:  getEnv("PDFTOPPM_PATH", "pdftoppm"),

		OCRTimeoutSeconds: getEnvInt("OCR_TIMEOUT_SECONDS", 60),
		OCRAlways:         getEnvBool("OCR_ALWAYS", false),
		MinDirectTextLen:  getEnvInt("MIN_DIRECT_TEXT_LEN", 50),
		MinMeaningfulLen:  getEnvInt("MIN_MEANINGFUL_TEXT_LEN", 30),
		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)), // 10 MiB

		MatchStrategy: getEnv("MATCH_STRATEGY", "overlap"),
		MinTokenLen:   getEnvInt("MIN_TOKEN_LEN", 3),
		KeywordWeight: getEnvFloat("KEYWORD_WEIGHT", 40),
		SkillWeight:   getEnvFloat("SKILL_WEIGHT", 30),
		LengthWeight:  getEnvFloat("LENGTH_WEIGHT", 30),

		LocationPenalty:    getEnvFloat("LOCATION_PENALTY", 0.7),
		MaxRecommendations: getEnvInt("MAX_RECOMMENDATIONS", 5),
		MissingDisplayCap:  getEnvInt("MISSING_KEYWORD_DISPLAY_CAP", 20),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
