package storage

import (
	"errors"
	"fmt"
)

// ErrNoTarget is returned when neither the call nor the client names a zone
// and an object.
var ErrNoTarget = errors.New("storage: no zone or file selected")

// ErrBadURL is returned when endpoint, zone and file do not join into a
// valid URL.
var ErrBadURL = errors.New("storage: malformed object URL")

// RemoteError is a non-success HTTP response from the storage or purge API.
// It carries the status code and the raw response body.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("storage: remote returned %d: %s", e.StatusCode, e.Body)
}

// Succeeded reports whether a status code counts as success.
func Succeeded(status int) bool {
	return status >= 200 && status <= 299
}
