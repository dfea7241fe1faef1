package services

import (
	"errors"
	"fmt"
)

// ErrModelInference marks a failed invocation of the price model. It is
// fatal for the request; there is no retry.
var ErrModelInference = errors.New("model inference failed")

// ValidationError describes a prediction query field outside its allowed
// range. The request is rejected before the model is invoked.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Message)
	}
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Message)
}
