// Package domain contains the core entities of the unit converter: measurement
// categories, the units scoped to them, and the request/result pair that
// describes a single conversion. It is independent of any delivery mechanism
// (HTTP, CLI) and of the conversion table itself, which lives in the units
// subpackage.
package domain
