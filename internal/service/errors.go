package service

import (
	"encoding/json"
	"fmt"
)

// ErrProviderUnavailable indicates Gemini could not be reached or answered
// with a non-success status.
type ErrProviderUnavailable struct {
	StatusCode int
	Err        error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gemini unavailable (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gemini unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates Gemini answered with content we cannot use
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid gemini response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
