package handler

import (
	"github.com/labstack/echo/v4"

	"medassist/internal/usecase"
	"medassist/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	Content        string `json:"content" validate:"required"`
	ConsultationID string `json:"consultation_id,omitempty"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		UserID:         c.Get("uid").(string),
		Content:        req.Content,
		ConsultationID: req.ConsultationID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}

func (h *ChatHandler) GetHistory(c echo.Context) error {
	messages, err := h.chatUseCase.GetHistory(
		c.Request().Context(),
		c.Get("uid").(string),
		c.Param("id"),
		0,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
