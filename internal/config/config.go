package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the API server. Values come
// from the environment, with an optional .env file loaded first.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// GeminiAPIKey authenticates against the Gemini API. Required;
	// the server refuses to start without it.
	GeminiAPIKey string

	// GeminiModel is the model used for all extractions.
	GeminiModel string

	// QueueBuffer is the analysis queue capacity.
	QueueBuffer int

	// Workers is the number of concurrent analysis workers.
	Workers int
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded when present; real environment variables
// take precedence over it.
func Load() Config {
	// Missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	return Config{
		Port:         getenv("PORT", "8080"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		QueueBuffer:  100,
		Workers:      2,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
