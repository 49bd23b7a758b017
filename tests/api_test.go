package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"medassist/internal/adapter/api"
	"medassist/internal/adapter/api/handler"
	"medassist/internal/infrastructure/speech"
	"medassist/internal/usecase"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	healthHandler := handler.NewHealthHandler()

	if assert.NoError(t, healthHandler.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "running")
	}
}

func TestSpeakWithoutBridgeSession(t *testing.T) {
	manager := speech.NewManager()
	manager.Start(context.Background())

	voiceUseCase := usecase.NewVoiceUseCase(manager, 10*time.Second)
	voiceHandler := handler.NewVoiceHandler(voiceUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/v1/voice/speak", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "user-1")

	start := time.Now()
	err := voiceHandler.Speak(c)

	// No bridge session means no synthesis capability: the call must
	// fail immediately, not after the synthesis ceiling.
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAPABILITY_UNAVAILABLE")
	assert.Less(t, time.Since(start), time.Second)
}

func TestListenWithoutBridgeSession(t *testing.T) {
	manager := speech.NewManager()
	manager.Start(context.Background())

	voiceUseCase := usecase.NewVoiceUseCase(manager, 10*time.Second)
	voiceHandler := handler.NewVoiceHandler(voiceUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()

	req := httptest.NewRequest(http.MethodPost, "/v1/voice/listen", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "user-1")

	err := voiceHandler.Listen(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "CAPABILITY_UNAVAILABLE")
}
