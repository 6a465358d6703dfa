// README: Itinerary error taxonomy.
package itinerary

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest marks a request that fails validation; callers map it to 400.
	ErrInvalidRequest = errors.New("invalid itinerary request")
	// ErrMalformedPayload is returned when the extracted model output is not usable JSON.
	ErrMalformedPayload = errors.New("malformed itinerary payload")
	// ErrMissingField is returned when a required field is absent from an otherwise valid payload.
	ErrMissingField = errors.New("missing itinerary field")
)

// FieldError names the payload path that failed mapping.
type FieldError struct {
	Path string
	Err  error
	// Reason is optional detail for malformed values.
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Err, e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Path)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingField(path string) error {
	return &FieldError{Path: path, Err: ErrMissingField}
}

func malformedField(path, reason string) error {
	return &FieldError{Path: path, Err: ErrMalformedPayload, Reason: reason}
}
