package domain

import (
	"fmt"
	"math"
)

// ConversionRequest describes a single conversion of Value from one unit to
// another within Category.
type ConversionRequest struct {
	Category string
	From     string
	To       string
	Value    float64
}

// Validate rejects values that no numeric form input could produce.
func (r ConversionRequest) Validate() error {
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, r.Value)
	}
	return nil
}

// Conversion is the outcome of a conversion. Category, From and To hold the
// canonical names from the conversion table, which may differ in case or
// form from the identifiers in the request.
type Conversion struct {
	Category string
	From     Unit
	To       Unit
	Value    float64
	Result   float64
}

// Formatted renders the result with six decimal places followed by the
// destination unit name.
func (c *Conversion) Formatted() string {
	return fmt.Sprintf("%.6f %s", c.Result, c.To.Name)
}
