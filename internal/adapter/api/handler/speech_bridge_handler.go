package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"medassist/internal/infrastructure/speech"
	"medassist/pkg/errors"
)

// SpeechBridgeHandler upgrades a browser connection into the user's
// speech engine: the browser hosts the recognition/synthesis APIs and
// relays their events over this socket.
type SpeechBridgeHandler struct {
	speechManager *speech.Manager
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewSpeechBridgeHandler(speechManager *speech.Manager) *SpeechBridgeHandler {
	return &SpeechBridgeHandler{
		speechManager: speechManager,
	}
}

func (h *SpeechBridgeHandler) HandleBridge(c echo.Context) error {
	userID, ok := c.Get("uid").(string)
	if !ok || userID == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	session := speech.NewSession(userID, conn)
	h.speechManager.Register <- session

	go session.ReadPump(h.speechManager)

	return nil
}
