package router

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/adapter/api/handler"
	"medassist/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, uploadHandler *handler.UploadHandler, analysisHandler *handler.AnalysisHandler, authMiddleware *middleware.AuthMiddleware) {
	uploads := e.Group("/v1/uploads")
	uploads.Use(authMiddleware.Authenticate)

	uploads.POST("", uploadHandler.CreateUpload)
	uploads.GET("/:id", uploadHandler.GetUpload)
	uploads.DELETE("/:id", uploadHandler.DeleteUpload)
	uploads.POST("/:id/analysis", analysisHandler.AnalyzeUpload)
}
