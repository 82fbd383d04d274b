package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is(); the API layer maps them to HTTP
// status codes. Domain sentinels (domain.ErrInvalidCategory,
// domain.ErrInvalidUnit, domain.ErrInvalidValue) pass through the service
// unchanged.
var (
	// ErrAmbiguousCategory indicates that a category could not be inferred
	// because the units appear in more than one category.
	ErrAmbiguousCategory = errors.New("category is ambiguous")
)
