package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnresolvedBot     = errors.New("unresolved bot")
	ErrPermissionDenied  = errors.New("notification permission denied")
	ErrBotNotFound       = errors.New("bot not found")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrEmptyConversation = errors.New("conversation has no messages")
	ErrEmptyMessage      = errors.New("message is empty")
)

// FetchError is a transient failure talking to the chatbot API.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the chatbot API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}

	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}
