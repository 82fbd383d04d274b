package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidCategory is returned when a category is not in the conversion table.
	// This is usually wrapped with the offending category name.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidUnit is returned when a unit does not belong to the requested category.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrInvalidValue is returned when a value to convert is NaN or infinite.
	ErrInvalidValue = errors.New("invalid value")

	// ErrValidation is returned when a domain entity fails validation.
	ErrValidation = errors.New("validation failed")
)
