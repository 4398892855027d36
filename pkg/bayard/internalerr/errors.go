package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUntrainedModel   = errors.New("untrained model")
	ErrInvalidParameter = errors.New("invalid parameter")
)
