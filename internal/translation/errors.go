// Package translation sends a document snapshot to the generative-language
// collaborator and returns a structurally identical, translated document.
package translation

import "fmt"

// TranslationError represents a failed translation attempt: a collaborator
// error, an unparseable response, or a response whose shape does not match
// the source document. The attempt is terminal; there is no partial or
// best-effort acceptance.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("translation failed: %s", e.Message)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}
