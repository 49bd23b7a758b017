package handler

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/usecase"
	"medassist/pkg/errors"
	"medassist/pkg/response"
)

type UploadHandler struct {
	uploadUseCase *usecase.UploadUseCase
}

func NewUploadHandler(uploadUseCase *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
	}
}

func (h *UploadHandler) CreateUpload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("A file is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to open uploaded file", err))
	}
	defer src.Close()

	upload, err := h.uploadUseCase.CreateUpload(c.Request().Context(), usecase.CreateUploadInput{
		UserID:         c.Get("uid").(string),
		ConsultationID: c.FormValue("consultation_id"),
		FileName:       file.Filename,
		FileType:       file.Header.Get("Content-Type"),
		File:           src,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, upload)
}

func (h *UploadHandler) GetUpload(c echo.Context) error {
	upload, err := h.uploadUseCase.GetUpload(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, upload)
}

func (h *UploadHandler) DeleteUpload(c echo.Context) error {
	err := h.uploadUseCase.DeleteUpload(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"deleted": true})
}
