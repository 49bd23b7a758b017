package handler

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/usecase"
	"medassist/pkg/response"
	"medassist/pkg/utils"
)

type ConsultationHandler struct {
	consultationUseCase *usecase.ConsultationUseCase
	uploadUseCase       *usecase.UploadUseCase
}

func NewConsultationHandler(consultationUseCase *usecase.ConsultationUseCase, uploadUseCase *usecase.UploadUseCase) *ConsultationHandler {
	return &ConsultationHandler{
		consultationUseCase: consultationUseCase,
		uploadUseCase:       uploadUseCase,
	}
}

type createConsultationRequest struct {
	Title    string `json:"title" validate:"required"`
	Symptoms string `json:"symptoms,omitempty"`
}

type updateConsultationRequest struct {
	Status          string `json:"status,omitempty" validate:"omitempty,oneof=ongoing completed"`
	Diagnosis       string `json:"diagnosis,omitempty"`
	Recommendations string `json:"recommendations,omitempty"`
}

func (h *ConsultationHandler) CreateConsultation(c echo.Context) error {
	var req createConsultationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	consultation, err := h.consultationUseCase.CreateConsultation(
		c.Request().Context(),
		c.Get("uid").(string),
		usecase.CreateConsultationInput{
			Title:    req.Title,
			Symptoms: req.Symptoms,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, consultation)
}

func (h *ConsultationHandler) GetConsultation(c echo.Context) error {
	consultation, err := h.consultationUseCase.GetConsultation(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, consultation)
}

func (h *ConsultationHandler) ListConsultations(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	consultations, total, err := h.consultationUseCase.ListConsultations(
		c.Request().Context(),
		c.Get("uid").(string),
		utils.GetStatusFilter(c),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, consultations, total, pagination.Page, pagination.PageSize)
}

func (h *ConsultationHandler) UpdateConsultation(c echo.Context) error {
	var req updateConsultationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	consultation, err := h.consultationUseCase.UpdateConsultation(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
		usecase.UpdateConsultationInput{
			Status:          req.Status,
			Diagnosis:       req.Diagnosis,
			Recommendations: req.Recommendations,
		},
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, consultation)
}

func (h *ConsultationHandler) DeleteConsultation(c echo.Context) error {
	err := h.consultationUseCase.DeleteConsultation(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}

func (h *ConsultationHandler) ListUploads(c echo.Context) error {
	// Ownership check rides on the consultation lookup.
	if _, err := h.consultationUseCase.GetConsultation(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
	); err != nil {
		return response.Error(c, err)
	}

	uploads, err := h.uploadUseCase.ListByConsultation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, uploads)
}
