package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port          string
	GeminiAPIKey  string
	GeminiModel   string
	ImageRelayURL string
	CatalogPath   string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	GeminiModel = os.Getenv("GEMINI_MODEL")
	if GeminiModel == "" {
		GeminiModel = "gemini-3-pro-image-preview"
	}

	ImageRelayURL = os.Getenv("IMAGE_RELAY_URL")
	if ImageRelayURL == "" {
		ImageRelayURL = "https://images.weserv.nl/"
	}

	CatalogPath = os.Getenv("CATALOG_PATH")
}
