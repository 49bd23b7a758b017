package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "medassist/pkg/errors"
)

func TestDispatchCapabilities(t *testing.T) {
	s := NewSession("user-1", nil)

	assert.False(t, s.HasRecognition())
	assert.False(t, s.HasSynthesis())

	s.dispatch(bridgeMessage{Type: "capabilities", Recognition: true, Synthesis: true})

	assert.True(t, s.HasRecognition())
	assert.True(t, s.HasSynthesis())
}

func TestDispatchListenResultSettlesPending(t *testing.T) {
	s := NewSession("user-1", nil)
	settler := NewSettler()
	s.listening = settler

	s.dispatch(bridgeMessage{Type: "listen.result", Transcript: "my head hurts"})

	transcript, err := settler.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "my head hurts", transcript)
	assert.Nil(t, s.listening, "a session consumes exactly one result")
}

func TestDispatchListenErrorRejectsPending(t *testing.T) {
	s := NewSession("user-1", nil)
	settler := NewSettler()
	s.listening = settler

	s.dispatch(bridgeMessage{Type: "listen.error", Message: "no-speech"})

	_, err := settler.Wait(context.Background())
	assert.True(t, apperrors.Is(err, "SPEECH_ERROR"))
	assert.Contains(t, err.Error(), "no-speech")
}

func TestDispatchSpeakEndSettlesUtterance(t *testing.T) {
	s := NewSession("user-1", nil)
	settler := NewSettler()
	s.utterances["utt-1"] = settler

	s.dispatch(bridgeMessage{Type: "speak.end", ID: "utt-1"})

	_, err := settler.Wait(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, s.utterances)
}

func TestDispatchSpeakErrorAfterSettlementIsSwallowed(t *testing.T) {
	s := NewSession("user-1", nil)
	settler := NewSettler()
	s.utterances["utt-1"] = settler

	// The fallback timer already settled the call.
	settler.Resolve("")

	s.dispatch(bridgeMessage{Type: "speak.error", ID: "utt-1", Message: "engine died"})

	value, err := settler.Wait(context.Background())
	assert.NoError(t, err, "late error events must not change the settled outcome")
	assert.Empty(t, value)
}

func TestDispatchUnknownUtteranceIsIgnored(t *testing.T) {
	s := NewSession("user-1", nil)

	assert.NotPanics(t, func() {
		s.dispatch(bridgeMessage{Type: "speak.end", ID: "never-issued"})
		s.dispatch(bridgeMessage{Type: "listen.result", Transcript: "orphan"})
	})
}

func TestFailPendingRejectsEverything(t *testing.T) {
	s := NewSession("user-1", nil)
	listening := NewSettler()
	utterance := NewSettler()
	s.listening = listening
	s.utterances["utt-1"] = utterance

	s.failPending(apperrors.SpeechError("Speech bridge disconnected", nil))

	_, err := listening.Wait(context.Background())
	assert.True(t, apperrors.Is(err, "SPEECH_ERROR"))

	_, err = utterance.Wait(context.Background())
	assert.True(t, apperrors.Is(err, "SPEECH_ERROR"))
}
