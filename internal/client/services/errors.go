package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankclient/internal/client/client"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation error")

	ErrPasswordPolicy    = errors.New("must be longer than 8 characters and contain a digit")
	ErrPasswordMatchesID = errors.New("must differ from the id")

	errSessionSave = errors.New("session save failed")
)

// Generic user-facing reasons.
const (
	ReasonUnreachable = "server unreachable, please try again later"
	ReasonCancelled   = "request cancelled"
	ReasonSessionSave = "could not save the session locally"
)

// ValidationError is a local rejection made before any request is sent.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// FailureReason turns a gateway error into text for the user. Server-provided
// text wins; transport problems get a generic connectivity message.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}

	var re *client.RemoteError
	if errors.As(err, &re) {
		return re.Reason()
	}

	switch {
	case errors.Is(err, client.ErrUnavailable):
		return ReasonUnreachable
	case errors.Is(err, context.Canceled):
		return ReasonCancelled
	case errors.Is(err, errSessionSave):
		return ReasonSessionSave
	default:
		return ReasonUnreachable
	}
}
