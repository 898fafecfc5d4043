package speech

// Transducer is the narrow contract over speech capture and synthesis.
// Both directions are fallible; callers treat a failed or empty capture as
// "no usable input" and re-prompt or fall back to typed text.
type Transducer interface {
	// Speak voices (or prints) an assistant message.
	Speak(text string) error

	// Listen captures one user utterance as text.
	Listen() (string, error)
}
