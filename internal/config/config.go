package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	AppPort     string // HTTP listen port
	DatabaseURL string // Full DSN; takes precedence over the DB_* parts
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	NewsFeedURL string // External chemistry news RSS feed
	PubChemURL  string // PubChem PUG REST base URL
	SeedAdmin   bool   // Create the default admin user at startup
}

// Load reads configuration from environment variables, consulting a
// .env file if one is present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:     getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBPort:      getEnv("DB_PORT", "5432"),
		NewsFeedURL: getEnv("NEWS_FEED_URL", "https://cen.acs.org/feeds/rss/latestnews.xml"),
		PubChemURL:  getEnv("PUBCHEM_URL", "https://pubchem.ncbi.nlm.nih.gov"),
		SeedAdmin:   getEnv("SEED_ADMIN", "true") == "true",
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
