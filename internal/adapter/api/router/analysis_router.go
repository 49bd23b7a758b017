package router

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/adapter/api/handler"
	"medassist/internal/adapter/api/middleware"
)

func SetupAnalysisRouter(e *echo.Echo, analysisHandler *handler.AnalysisHandler, authMiddleware *middleware.AuthMiddleware) {
	analysis := e.Group("/v1/analysis")
	analysis.Use(authMiddleware.Authenticate)

	analysis.POST("", analysisHandler.AnalyzeImage)
}
