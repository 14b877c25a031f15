package email

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout          = errors.New("email delivery timed out")
	ErrRemoteRejected   = errors.New("email delivery rejected")
	ErrTransportFailure = errors.New("email transport failure")
)

// RemoteRejectedError is returned when the delivery service answers with a
// non-success status. It matches ErrRemoteRejected.
type RemoteRejectedError struct {
	StatusCode int
	Message    string
}

func (e *RemoteRejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", ErrRemoteRejected, e.StatusCode)
	}

	return fmt.Sprintf("%v: status %d: %s", ErrRemoteRejected, e.StatusCode, e.Message)
}

func (e *RemoteRejectedError) Is(target error) bool {
	return target == ErrRemoteRejected
}
