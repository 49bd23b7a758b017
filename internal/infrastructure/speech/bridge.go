package speech

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"medassist/pkg/errors"
	"medassist/pkg/logger"

	"github.com/google/uuid"
)

// The bridge protocol carries speech commands to the browser (where the
// recognition and synthesis APIs actually live) and their events back.
//
// server -> browser: listen.start, speak
// browser -> server: capabilities, listen.result, listen.error,
//                    speak.end, speak.error
type bridgeMessage struct {
	Type        string  `json:"type"`
	ID          string  `json:"id,omitempty"`
	Text        string  `json:"text,omitempty"`
	Transcript  string  `json:"transcript,omitempty"`
	Message     string  `json:"message,omitempty"`
	Recognition bool    `json:"recognition,omitempty"`
	Synthesis   bool    `json:"synthesis,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
}

// Session is one browser connection acting as the user's speech engine.
// It implements Recognizer and Synthesizer over the bridge protocol.
type Session struct {
	UserID string
	Conn   *websocket.Conn

	writeMu sync.Mutex

	mu          sync.Mutex
	recognition bool
	synthesis   bool
	listening   *Settler
	utterances  map[string]*Settler
}

func NewSession(userID string, conn *websocket.Conn) *Session {
	return &Session{
		UserID:     userID,
		Conn:       conn,
		utterances: make(map[string]*Settler),
	}
}

var (
	_ Recognizer  = (*Session)(nil)
	_ Synthesizer = (*Session)(nil)
)

func (s *Session) HasRecognition() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recognition
}

func (s *Session) HasSynthesis() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.synthesis
}

// StartRecognition begins one recognition session on the browser. Only
// one session is pending at a time; a second call while one is pending
// fails rather than queueing.
func (s *Session) StartRecognition() (*Settler, error) {
	s.mu.Lock()
	if s.listening != nil && !s.listening.Settled() {
		s.mu.Unlock()
		return nil, errors.SpeechError("A recognition session is already active", nil)
	}
	settler := NewSettler()
	s.listening = settler
	s.mu.Unlock()

	if err := s.send(bridgeMessage{Type: "listen.start"}); err != nil {
		settler.Reject(errors.SpeechError("Failed to start recognition", err))
	}

	return settler, nil
}

// SpeakUtterance submits one utterance to the browser's synthesis engine.
func (s *Session) SpeakUtterance(text string) (*Settler, error) {
	id := uuid.New().String()
	settler := NewSettler()

	s.mu.Lock()
	s.utterances[id] = settler
	s.mu.Unlock()

	if err := s.send(bridgeMessage{Type: "speak", ID: id, Text: text}); err != nil {
		settler.Reject(errors.SpeechError("Failed to submit utterance", err))
	}

	return settler, nil
}

func (s *Session) send(msg bridgeMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.Conn.WriteJSON(msg)
}

// ReadPump consumes browser events until the connection closes. Pending
// settlers are rejected on disconnect so no caller hangs on a dead bridge.
func (s *Session) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- s
		s.Conn.Close()
		s.failPending(errors.SpeechError("Speech bridge disconnected", nil))
	}()

	for {
		_, data, err := s.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Speech bridge read error: user=%s, error=%v", s.UserID, err)
			}
			break
		}

		var msg bridgeMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Warn("Speech bridge bad message: user=%s, error=%v", s.UserID, err)
			continue
		}

		s.dispatch(msg)
	}
}

func (s *Session) dispatch(msg bridgeMessage) {
	switch msg.Type {
	case "capabilities":
		s.mu.Lock()
		s.recognition = msg.Recognition
		s.synthesis = msg.Synthesis
		s.mu.Unlock()

	case "listen.result":
		if settler := s.takeListening(); settler != nil {
			settler.Resolve(msg.Transcript)
		}

	case "listen.error":
		if settler := s.takeListening(); settler != nil {
			settler.Reject(errors.SpeechError(fmt.Sprintf("Speech recognition error: %s", msg.Message), nil))
		}

	case "speak.end":
		if settler := s.takeUtterance(msg.ID); settler != nil {
			if !settler.Resolve("") {
				logger.Debug("Utterance %s already settled before end event", msg.ID)
			}
		}

	case "speak.error":
		if settler := s.takeUtterance(msg.ID); settler != nil {
			// An error after the fallback timer already settled the call
			// is logged, not surfaced.
			if !settler.Reject(errors.SpeechError(fmt.Sprintf("Speech synthesis error: %s", msg.Message), nil)) {
				logger.Warn("Synthesis error after settlement: user=%s, utterance=%s, message=%s", s.UserID, msg.ID, msg.Message)
			}
		}

	default:
		logger.Debug("Speech bridge unknown message type: %s", msg.Type)
	}
}

func (s *Session) takeListening() *Settler {
	s.mu.Lock()
	defer s.mu.Unlock()
	settler := s.listening
	s.listening = nil
	return settler
}

func (s *Session) takeUtterance(id string) *Settler {
	s.mu.Lock()
	defer s.mu.Unlock()
	settler, ok := s.utterances[id]
	if ok {
		delete(s.utterances, id)
	}
	return settler
}

func (s *Session) failPending(err error) {
	s.mu.Lock()
	listening := s.listening
	s.listening = nil
	pending := s.utterances
	s.utterances = make(map[string]*Settler)
	s.mu.Unlock()

	if listening != nil {
		listening.Reject(err)
	}
	for _, settler := range pending {
		settler.Reject(err)
	}
}
