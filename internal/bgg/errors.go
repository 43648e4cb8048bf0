package bgg

import (
	"errors"
	"fmt"
)

// ErrDeferred indicates the upstream accepted the request but has not
// produced data yet. Callers may retry later; this is neither success
// nor failure.
var ErrDeferred = errors.New("bgg: request accepted, data not ready")

// UpstreamError carries an error message returned inside an upstream
// response body.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("bgg: upstream error: %s", e.Message)
}

// ParseError indicates a response body whose document shape is not one
// of the known upstream shapes.
type ParseError struct {
	Shape string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bgg: failed to parse %q response: %v", e.Shape, e.Cause)
	}
	return fmt.Sprintf("bgg: unrecognized response shape %q", e.Shape)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
