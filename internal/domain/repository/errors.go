package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("seed source not found")

// NotFoundError reports a seed source that does not exist or cannot be reached.
type NotFoundError struct {
	Source string
	Err    error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Seed data missing at %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("Seed data missing at %s", e.Source)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
