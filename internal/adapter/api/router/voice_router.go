package router

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/adapter/api/handler"
	"medassist/internal/adapter/api/middleware"
)

func SetupVoiceRouter(e *echo.Echo, voiceHandler *handler.VoiceHandler, bridgeHandler *handler.SpeechBridgeHandler, authMiddleware *middleware.AuthMiddleware) {
	voice := e.Group("/v1/voice")
	voice.Use(authMiddleware.Authenticate)

	voice.POST("/listen", voiceHandler.Listen)
	voice.POST("/speak", voiceHandler.Speak)

	// The bridge socket carries the browser's speech engines.
	e.GET("/ws/speech", bridgeHandler.HandleBridge, authMiddleware.Authenticate)
}
