package cases

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery means neither a CNR nor a complete (type, number, year)
	// triple was given, it is raised before any request is made.
	ErrInvalidQuery = errors.New("invalid query: provide a CNR or all of case type, number and year")
	// ErrTransportFailed covers network errors, timeouts and non-2xx responses.
	ErrTransportFailed = errors.New("transport failed")
	// ErrNoTableFound means the portal answered but the page holds no listing
	// table, which usually means the case is unknown.
	ErrNoTableFound = errors.New("no case details found")
	// ErrPersistenceFailed means a result could not be written to disk.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// TransportError is returned by the portal client for any failed request.
type TransportError struct {
	Method string
	Target string
	// StatusCode is 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: %s: status %d", e.Method, e.Target, ErrTransportFailed, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Target, ErrTransportFailed, e.Err)
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransportFailed}
	}
	return []error{ErrTransportFailed, e.Err}
}

// PersistenceError is returned by the sinks when a file cannot be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Path, ErrPersistenceFailed, e.Err)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistenceFailed, e.Err}
}
