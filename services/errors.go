package services

import "fmt"

// LoadError is fatal to a load attempt: network/HTTP failure, an empty
// payload, missing required columns, or a snapshot where validation
// left zero rows. Row-level validation failures never surface here on
// their own; bad rows are simply dropped.
type LoadError struct {
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load crowd data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to load crowd data: %s", e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
