package speech

// Recognizer starts one speech-recognition session. The returned Settler
// resolves with the first result's top transcript or rejects with the
// session's error; one result or one error is consumed per call.
type Recognizer interface {
	StartRecognition() (*Settler, error)
}

// Synthesizer submits one utterance. The returned Settler resolves on the
// utterance's natural end event or rejects on an error event. Callers are
// expected to pair it with their own fallback timer.
type Synthesizer interface {
	SpeakUtterance(text string) (*Settler, error)
}
