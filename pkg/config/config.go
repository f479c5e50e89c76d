package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	OpenAIAPIKey       string
	OpenAIModel        string
	GeminiAPIKey       string
	AIProvider         string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	FrontendURL        string
	CORSOrigins        []string
	RequestTimeout     time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	requestTimeout := 15 * time.Second
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			requestTimeout = parsed
		}
	}

	origins := []string{"http://localhost:3000", "http://localhost:5001"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:               getEnv("PORT", "5001"),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		AIProvider:         getEnv("AI_PROVIDER", "auto"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:5001/api/google/callback"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins:        origins,
		RequestTimeout:     requestTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
