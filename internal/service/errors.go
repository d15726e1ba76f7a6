package service

import (
	"errors"
	"fmt"
)

// ErrAlreadyReviewed is returned on a duplicate review attempt.
var ErrAlreadyReviewed = errors.New("meeting already has a review")

// ValidationError reports a malformed or missing field. Retrying the same
// request cannot succeed; the caller must change it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
