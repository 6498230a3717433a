package services

import (
	"context"
	"fmt"
)

// ValidationError is a client-side input problem. Its message is shown to the
// shopper as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// stillWanted reports an error if the request that issued a backend call went
// away before its response could be applied to the session.
func stillWanted(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: discarding response: %w", op, err)
	}
	return nil
}
