package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("server unreachable")
	ErrNotFound    = errors.New("not found")
)

// RemoteError is a non-2xx answer from the API. Body holds at most the
// first 4 KiB of the response; anything longer is cut off.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("remote error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("remote error %d", e.StatusCode)
}

// Is makes a 404 match ErrNotFound.
func (e *RemoteError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Reason is the text to show a user: the server body verbatim when it is
// non-empty, otherwise a generic message.
func (e *RemoteError) Reason() string {
	if len(e.Body) > 0 {
		return e.Body
	}
	return fmt.Sprintf("request failed (%d %s)", e.StatusCode, http.StatusText(e.StatusCode))
}
