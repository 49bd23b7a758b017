package handler

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/usecase"
	"medassist/pkg/response"
)

type VoiceHandler struct {
	voiceUseCase *usecase.VoiceUseCase
}

func NewVoiceHandler(voiceUseCase *usecase.VoiceUseCase) *VoiceHandler {
	return &VoiceHandler{
		voiceUseCase: voiceUseCase,
	}
}

type listenResponse struct {
	Transcript string `json:"transcript"`
}

type speakRequest struct {
	Text string `json:"text" validate:"required"`
}

type speakResponse struct {
	Done bool `json:"done"`
}

func (h *VoiceHandler) Listen(c echo.Context) error {
	transcript, err := h.voiceUseCase.StartListening(c.Request().Context(), c.Get("uid").(string))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listenResponse{Transcript: transcript})
}

func (h *VoiceHandler) Speak(c echo.Context) error {
	var req speakRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.voiceUseCase.Speak(c.Request().Context(), c.Get("uid").(string), req.Text); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, speakResponse{Done: true})
}
