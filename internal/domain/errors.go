package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoCredential = errors.New("no api key available")
	ErrTransport    = errors.New("backend unreachable")
	ErrServer       = errors.New("backend returned an error")
	ErrNotFound     = errors.New("not found")
	ErrEntryExists  = errors.New("catalog entry already exists")
)

// TransportError reports a request that never produced an HTTP response, or a
// response body that failed mid-read.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}

// ServerError carries a non-2xx status together with the response body text.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("status %d", e.Status)
	}
	return fmt.Sprintf("status %d: %s", e.Status, body)
}

func (e *ServerError) Unwrap() error {
	return ErrServer
}

// Describe turns any failure into the line shown to the user on an output surface.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *ServerError
	switch {
	case errors.Is(err, ErrNoCredential):
		return "No API key available — start backend"
	case errors.Is(err, ErrNotFound):
		return NotFoundText
	case errors.As(err, &serverErr):
		body := strings.TrimSpace(serverErr.Body)
		if body == "" {
			body = fmt.Sprintf("status %d", serverErr.Status)
		}
		return "Error: " + body
	case errors.Is(err, ErrTransport):
		return "Error: " + ErrTransport.Error()
	default:
		return "Error: " + err.Error()
	}
}
