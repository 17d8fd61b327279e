package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNilDriver is returned when the renderer has no prompt driver.
	ErrNilDriver = errors.New("prompt: prompt driver is nil")
)
