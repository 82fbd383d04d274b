// Package units holds the static conversion table and the pure functions that
// convert values between units of one category.
//
// Linear categories (length, weight, volume) convert through the category
// base unit: result = value * factor(from) / factor(to). Temperature is
// affine and converts through Celsius as the pivot unit.
//
// A Table is immutable once built, so a single instance can be shared by
// concurrent callers without locking.
package units
