package domain

import "errors"

// ErrInvalidWindow is the sentinel for malformed booking time windows
var ErrInvalidWindow = errors.New("invalid booking window")

// WindowError describes why a time window was rejected
type WindowError struct {
	Reason string
}

func (e *WindowError) Error() string {
	return ErrInvalidWindow.Error() + ": " + e.Reason
}

func (e *WindowError) Unwrap() error {
	return ErrInvalidWindow
}
