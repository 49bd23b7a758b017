package router

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/adapter/api/handler"
	"medassist/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chat := e.Group("/v1/chat")
	chat.Use(authMiddleware.Authenticate)

	chat.POST("/messages", chatHandler.SendMessage)

	e.GET("/v1/consultations/:id/messages", chatHandler.GetHistory, authMiddleware.Authenticate)
}
