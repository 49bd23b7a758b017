package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "medassist/pkg/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "test-project")
	t.Setenv("FIREBASE_API_KEY", "test-api-key")
	t.Setenv("FIREBASE_AUTH_DOMAIN", "test-project.firebaseapp.com")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "test-project.appspot.com")
	t.Setenv("FIREBASE_MESSAGING_SENDER_ID", "1234567890")
	t.Setenv("FIREBASE_APP_ID", "1:1234567890:web:abcdef")
	t.Setenv("GENAI_API_KEY", "sk-test")
}

func TestLoadWithFullEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "test-project", cfg.FirebaseProject)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, int64(10), cfg.SynthesisTimeoutSec)
}

func TestLoadMissingFirebaseValue(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FIREBASE_STORAGE_BUCKET", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.True(t, apperrors.Is(err, "CONFIG_MISSING"))
	assert.Contains(t, err.Error(), "FIREBASE_STORAGE_BUCKET")
}

func TestLoadMissingGenAIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GENAI_API_KEY", "")

	_, err := Load()
	assert.True(t, apperrors.Is(err, "CONFIG_MISSING"))
}

func TestValidateOverriddenTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SYNTHESIS_TIMEOUT_SEC", "5")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, int64(5), cfg.SynthesisTimeoutSec)
}
