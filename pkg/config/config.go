package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"medassist/pkg/errors"
)

type Config struct {
	ServerPort  string
	Environment string

	// Firebase project values. All six are required by the remote
	// clients; Validate surfaces a missing one before any client is built.
	FirebaseProject    string
	FirebaseApiKey     string
	FirebaseAuthDomain string
	StorageBucket      string
	MessagingSenderID  string
	FirebaseAppID      string

	// Generative service values.
	GenAIApiKey      string
	GenAIBaseURL     string
	GenAIModel       string
	GenAIVisionModel string

	// Ceiling for one speech-synthesis utterance, in seconds.
	SynthesisTimeoutSec int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		FirebaseProject:     getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:      getEnv("FIREBASE_API_KEY", ""),
		FirebaseAuthDomain:  getEnv("FIREBASE_AUTH_DOMAIN", ""),
		StorageBucket:       getEnv("FIREBASE_STORAGE_BUCKET", ""),
		MessagingSenderID:   getEnv("FIREBASE_MESSAGING_SENDER_ID", ""),
		FirebaseAppID:       getEnv("FIREBASE_APP_ID", ""),
		GenAIApiKey:         getEnv("GENAI_API_KEY", ""),
		GenAIBaseURL:        getEnv("GENAI_BASE_URL", ""),
		GenAIModel:          getEnv("GENAI_MODEL", "gpt-4o-mini"),
		GenAIVisionModel:    getEnv("GENAI_VISION_MODEL", "gpt-4o"),
		SynthesisTimeoutSec: getEnvAsInt64("SYNTHESIS_TIMEOUT_SEC", 10),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values the remote clients cannot start without.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"FIREBASE_PROJECT_ID", c.FirebaseProject},
		{"FIREBASE_API_KEY", c.FirebaseApiKey},
		{"FIREBASE_AUTH_DOMAIN", c.FirebaseAuthDomain},
		{"FIREBASE_STORAGE_BUCKET", c.StorageBucket},
		{"FIREBASE_MESSAGING_SENDER_ID", c.MessagingSenderID},
		{"FIREBASE_APP_ID", c.FirebaseAppID},
		{"GENAI_API_KEY", c.GenAIApiKey},
	}

	for _, field := range required {
		if field.value == "" {
			return errors.ConfigMissing(field.name)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
