package router

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/adapter/api/handler"
	"medassist/internal/adapter/api/middleware"
)

type Handlers struct {
	Health       *handler.HealthHandler
	User         *handler.UserHandler
	Chat         *handler.ChatHandler
	Analysis     *handler.AnalysisHandler
	Voice        *handler.VoiceHandler
	Consultation *handler.ConsultationHandler
	Upload       *handler.UploadHandler
	SpeechBridge *handler.SpeechBridgeHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	SetupHealthRouter(e, h.Health)
	SetupUserRouter(e, h.User, authMiddleware)
	SetupChatRouter(e, h.Chat, authMiddleware)
	SetupAnalysisRouter(e, h.Analysis, authMiddleware)
	SetupVoiceRouter(e, h.Voice, h.SpeechBridge, authMiddleware)
	SetupConsultationRouter(e, h.Consultation, authMiddleware)
	SetupUploadRouter(e, h.Upload, h.Analysis, authMiddleware)
}
