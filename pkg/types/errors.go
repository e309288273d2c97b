package types

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the client, the favorites store and the controllers.
var (
	ErrRemoteUnavailable  = errors.New("remote recipe source unavailable")
	ErrNotFound           = errors.New("not found")
	ErrPersistenceCorrupt = errors.New("persisted favorites are corrupt")
	ErrInvalidInput       = errors.New("invalid input")
)

// RemoteUnavailableError reports a network failure or a non-success
// response from the remote recipe source. Err holds the original cause.
type RemoteUnavailableError struct {
	Op  string
	Err error
}

func (e *RemoteUnavailableError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrRemoteUnavailable, e.Err)
}

func (e *RemoteUnavailableError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRemoteUnavailable) match.
func (e *RemoteUnavailableError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}
