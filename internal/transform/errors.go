package transform

import "fmt"

// GenerationError is the single terminal failure of a transform request.
// Backend call failures, non-JSON responses and schema violations all
// collapse into it; the user-facing remedy (resubmit) is the same for each.
// It is never retried automatically and never accompanies a partial document.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
