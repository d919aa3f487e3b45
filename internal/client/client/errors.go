package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("note not found")
	ErrMissingID   = errors.New("note has no id")

	ErrInvalidBaseURL = errors.New("invalid server url")
)

// ServerError is a non-2xx response other than 404.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error: status %d", e.Status)
	}
	return fmt.Sprintf("server error: status %d: %s", e.Status, e.Message)
}
