package render

import "fmt"

// Fault is an unexpected failure inside the renderer on a structurally valid
// document. It signals an internal defect, not a user input problem, and is
// surfaced rather than swallowed.
type Fault struct {
	Cause error
}

func (e *Fault) Error() string {
	return fmt.Sprintf("render fault: %v", e.Cause)
}

func (e *Fault) Unwrap() error {
	return e.Cause
}
