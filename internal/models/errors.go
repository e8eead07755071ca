package models

import "errors"

// Error constants for declaration operations
var (
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrRenderFailed    = errors.New("failed to render declaration")
	ErrServiceNotReady = errors.New("declaration service not initialized")
)
