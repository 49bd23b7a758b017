package router

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/adapter/api/handler"
	"medassist/internal/adapter/api/middleware"
)

func SetupConsultationRouter(e *echo.Echo, consultationHandler *handler.ConsultationHandler, authMiddleware *middleware.AuthMiddleware) {
	consultations := e.Group("/v1/consultations")
	consultations.Use(authMiddleware.Authenticate)

	consultations.POST("", consultationHandler.CreateConsultation)
	consultations.GET("", consultationHandler.ListConsultations)
	consultations.GET("/:id", consultationHandler.GetConsultation)
	consultations.PATCH("/:id", consultationHandler.UpdateConsultation)
	consultations.DELETE("/:id", consultationHandler.DeleteConsultation)
	consultations.GET("/:id/uploads", consultationHandler.ListUploads)
}
