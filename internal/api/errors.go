package api

import (
	"errors"
	"fmt"
)

// ErrEmptySlug is returned when a track request is made without a slug.
var ErrEmptySlug = errors.New("track slug is required")

// Error is a non-2xx response from the backend.
type Error struct {
	Status int
	// Message is the backend's {"error": "..."} text, empty when absent.
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status code %d", e.Status)
}

// TransportError indicates the request never completed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// InvalidResponseError indicates a 2xx body that does not match the contract.
type InvalidResponseError struct {
	Content []byte
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid backend response: %v", e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }
