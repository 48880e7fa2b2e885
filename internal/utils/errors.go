package utils

import "errors"

// Common application errors used across services.
var (
	ErrValidation     = errors.New("VALIDATION_ERROR")
	ErrFlowerNotFound = errors.New("FLOWER_NOT_FOUND")
	ErrAccessDenied   = errors.New("ACCESS_DENIED")
	ErrDispatchFailed = errors.New("DISPATCH_FAILED")
)
