package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnreachable marks transport failures where no response arrived.
	ErrUnreachable = errors.New("server unreachable")

	// ErrMutationWindowExpired marks a server-rejected edit or delete on
	// a record older than the mutability window.
	ErrMutationWindowExpired = errors.New("transaction can no longer be changed")
)

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// responseError builds an Error from a failed response, preferring the
// server-provided message when the body carries one.
func responseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			msg = payload.Error
		} else {
			msg = payload.Message
		}
	}
	return &Error{StatusCode: resp.StatusCode, Message: msg}
}

// mutationError maps a 403 on an edit or delete to the window-expired
// sentinel. Other errors pass through unchanged.
func mutationError(err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		if apiErr.Message != "" {
			return fmt.Errorf("%w: %s", ErrMutationWindowExpired, apiErr.Message)
		}
		return ErrMutationWindowExpired
	}
	return err
}
