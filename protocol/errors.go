package protocol

import (
	"errors"
	"strconv"
)

// ErrMalformedStatus is returned when a line expected to carry a status
// does not start with a three digit code.
var ErrMalformedStatus = errors.New("malformed status line")

// ProtocolError is the single error kind surfaced by DICT operations.
//
// It covers socket failures, handshake rejection, I/O errors during an
// exchange, malformed or unexpected status lines and premature end of
// stream. Op names the step that failed (dial, handshake, write, read,
// status, ...).
//
// Status is set when the server answered with a well-formed but unexpected
// status. A final status (2xx to 5xx) ends the reply, so the stream is still
// in sync and the connection can be reused. A preliminary status (1xx)
// announces a body that was not read. It and every other ProtocolError leave
// the stream in an unknown state.
type ProtocolError struct {
	Op      string
	Message string
	Status  *Status // Unexpected status, if any
	Err     error   // Underlying error, if any
}

func (e *ProtocolError) Error() string {
	msg := "dict: " + e.Op
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Status != nil {
		msg += ": " + strconv.Itoa(e.Status.Code)
		if e.Status.Text != "" {
			msg += " " + e.Status.Text
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// ShouldCloseConnection reports whether the stream is desynchronized.
// An unexpected final status, or an argument rejected before anything was
// written, keeps the connection usable.
func (e *ProtocolError) ShouldCloseConnection() bool {
	if errors.Is(e.Err, ErrInvalidArgument) {
		return false
	}
	return e.Status == nil || e.Status.Type() == TypePreliminary
}

// NewStatusError reports a well-formed status the operation did not expect.
func NewStatusError(op string, status Status) *ProtocolError {
	return &ProtocolError{Op: op, Message: "unexpected status", Status: &status}
}

// ShouldCloseConnection is a helper function to determine if an error
// leaves the connection unusable.
//
// Returns false for nil and for unexpected final status errors, true
// otherwise.
// Unknown error types are treated conservatively.
func ShouldCloseConnection(err error) bool {
	if err == nil {
		return false
	}

	var e *ProtocolError
	if errors.As(err, &e) {
		return e.ShouldCloseConnection()
	}

	return true
}

// StatusOf extracts the unexpected status carried by err, if any.
func StatusOf(err error) (Status, bool) {
	var e *ProtocolError
	if errors.As(err, &e) && e.Status != nil {
		return *e.Status, true
	}
	return Status{}, false
}
