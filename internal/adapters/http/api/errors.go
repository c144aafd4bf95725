package api

import (
	"errors"
	"fmt"
)

// ErrBadRequest marks parameter validation failures mapped to 400.
var ErrBadRequest = errors.New("bad request")

// Wrap annotates an error with a short operation context.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
