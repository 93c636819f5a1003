package pong

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid simulation input")

// InvalidInputError names the value that would have corrupted the state.
type InvalidInputError struct {
	Field string
	Value float32
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: %s = %v", ErrInvalidInput, e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
