package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap adds context to an error while keeping its chain intact.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches a sentinel to err so errors.Is(err, markErr) holds without
// losing the original cause. The usecase layer uses it to classify infra
// failures into the domain error taxonomy.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
