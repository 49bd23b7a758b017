package usecase

import (
	"context"
	"time"

	"medassist/internal/infrastructure/speech"
	"medassist/pkg/errors"
	"medassist/pkg/logger"
)

// CapabilityProvider resolves a user's speech capabilities. A nil return
// means the capability is absent on that user's host.
type CapabilityProvider interface {
	RecognizerFor(userID string) speech.Recognizer
	SynthesizerFor(userID string) speech.Synthesizer
}

type VoiceUseCase struct {
	capabilities     CapabilityProvider
	synthesisTimeout time.Duration
}

func NewVoiceUseCase(capabilities CapabilityProvider, synthesisTimeout time.Duration) *VoiceUseCase {
	return &VoiceUseCase{
		capabilities:     capabilities,
		synthesisTimeout: synthesisTimeout,
	}
}

// StartListening runs one recognition session and returns the first
// result's top transcript. The session is never restarted; one result or
// one error settles the call.
func (uc *VoiceUseCase) StartListening(ctx context.Context, userID string) (string, error) {
	recognizer := uc.capabilities.RecognizerFor(userID)
	if recognizer == nil {
		return "", errors.CapabilityUnavailable("Speech recognition")
	}

	settler, err := recognizer.StartRecognition()
	if err != nil {
		logger.LogAdapterError("voice", userID, err)
		return "", err
	}

	transcript, err := settler.Wait(ctx)
	if err != nil {
		logger.LogAdapterError("voice", userID, err)
		return "", err
	}

	return transcript, nil
}

// Speak submits one utterance and waits for its end event or the fixed
// fallback ceiling, whichever settles first. The call never hangs on an
// engine that silently drops its completion event; an error event that
// arrives after the timer won is logged, not surfaced.
func (uc *VoiceUseCase) Speak(ctx context.Context, userID, text string) error {
	synthesizer := uc.capabilities.SynthesizerFor(userID)
	if synthesizer == nil {
		return errors.CapabilityUnavailable("Speech synthesis")
	}

	settler, err := synthesizer.SpeakUtterance(text)
	if err != nil {
		logger.LogAdapterError("voice", text, err)
		return err
	}

	timer := time.AfterFunc(uc.synthesisTimeout, func() {
		if settler.Resolve("") {
			logger.Warn("Synthesis end event never fired, resolved by %s ceiling", uc.synthesisTimeout)
		}
	})
	defer timer.Stop()

	if _, err := settler.Wait(ctx); err != nil {
		logger.LogAdapterError("voice", text, err)
		return err
	}

	return nil
}
