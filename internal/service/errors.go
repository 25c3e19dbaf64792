package service

import "errors"

var (
	// ErrInvalidDataProvided wraps all account validation failures.
	// The wrapped cause names the offending field.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
