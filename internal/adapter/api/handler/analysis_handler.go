package handler

import (
	"encoding/base64"
	"io"

	"github.com/labstack/echo/v4"

	"medassist/internal/infrastructure/genai"
	"medassist/internal/usecase"
	"medassist/pkg/errors"
	"medassist/pkg/response"
)

type AnalysisHandler struct {
	analysisUseCase *usecase.AnalysisUseCase
}

func NewAnalysisHandler(analysisUseCase *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUseCase: analysisUseCase,
	}
}

type analyzeImageRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FileType string `json:"file_type" validate:"required"`
	Data     string `json:"data" validate:"required"` // base64 payload or data URL
}

type analyzeImageResponse struct {
	Analysis string `json:"analysis"`
}

// AnalyzeImage accepts either a multipart file or a JSON body carrying a
// base64 data URL (the form browser file readers produce).
func (h *AnalysisHandler) AnalyzeImage(c echo.Context) error {
	input, err := h.bindImageInput(c)
	if err != nil {
		return response.Error(c, err)
	}

	analysis, err := h.analysisUseCase.AnalyzeImage(c.Request().Context(), *input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, analyzeImageResponse{Analysis: analysis})
}

func (h *AnalysisHandler) AnalyzeUpload(c echo.Context) error {
	upload, err := h.analysisUseCase.AnalyzeUpload(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, upload)
}

func (h *AnalysisHandler) bindImageInput(c echo.Context) (*usecase.AnalyzeImageInput, error) {
	if file, err := c.FormFile("file"); err == nil {
		src, err := file.Open()
		if err != nil {
			return nil, errors.BadRequest("Failed to open uploaded file", err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return nil, errors.AnalysisFailed("Failed to read uploaded file", err)
		}

		return &usecase.AnalyzeImageInput{
			FileName: file.Filename,
			FileType: file.Header.Get("Content-Type"),
			Data:     data,
		}, nil
	}

	var req analyzeImageRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.BadRequest("Expected a multipart file or a JSON image payload", err)
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(genai.StripDataURL(req.Data))
	if err != nil {
		return nil, errors.BadRequest("Image data is not valid base64", err)
	}

	return &usecase.AnalyzeImageInput{
		FileName: req.FileName,
		FileType: req.FileType,
		Data:     data,
	}, nil
}
