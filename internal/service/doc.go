// Package service contains the application use cases of the unit converter.
//
// ConversionService sits between the delivery mechanisms (HTTP API, CLI) and
// the conversion table in internal/domain/units. It resolves categories and
// units, performs conversions, and takes care of the cross-cutting concerns
// of every conversion: request-scoped logging and metrics.
//
// Error handling:
//   - Domain sentinel errors are returned unwrapped so errors.Is works
//     at the API boundary
//   - Unexpected errors are wrapped in ConversionServiceError with the
//     failing operation
package service
