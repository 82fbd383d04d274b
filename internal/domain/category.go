package domain

import (
	"fmt"
	"strings"
)

// CategoryKind describes how units of a category relate to each other.
type CategoryKind string

// Possible category kinds
const (
	// CategoryKindLinear categories scale every unit from a shared base unit.
	CategoryKindLinear CategoryKind = "linear"
	// CategoryKindAffine categories need offset formulas (temperature).
	CategoryKindAffine CategoryKind = "affine"
)

// Unit is a named unit of measurement scoped to exactly one category.
//
// Name is the identifier used for lookups ("Meters"); Symbol is a short
// display tag ("m"). Factor is the multiplier that converts a value in this
// unit to the category base unit. It is zero for affine categories.
type Unit struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Factor float64 `json:"factor,omitempty"`
}

// Matches reports whether id identifies this unit, either by name
// (case-insensitive) or by exact symbol.
func (u Unit) Matches(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	return strings.EqualFold(u.Name, id) || u.Symbol == id
}

// Category is a family of comparable units.
type Category struct {
	Name     string       `json:"name"`
	Kind     CategoryKind `json:"kind"`
	BaseUnit string       `json:"base_unit"`
	Units    []Unit       `json:"units"`
}

// Validate checks the category invariants: at least one unit, a base unit
// that belongs to the category, strictly positive factors for linear
// categories and a base factor of exactly 1.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}

	if len(c.Units) == 0 {
		return fmt.Errorf("%w: category %q has no units", ErrValidation, c.Name)
	}

	if c.Kind != CategoryKindLinear && c.Kind != CategoryKindAffine {
		return fmt.Errorf("%w: category %q has unknown kind %q", ErrValidation, c.Name, c.Kind)
	}

	seen := make(map[string]struct{}, len(c.Units))
	baseFound := false
	for _, u := range c.Units {
		key := strings.ToLower(u.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate unit %q in category %q", ErrValidation, u.Name, c.Name)
		}
		seen[key] = struct{}{}

		if c.Kind == CategoryKindLinear && u.Factor <= 0 {
			return fmt.Errorf("%w: unit %q has non-positive factor %v", ErrValidation, u.Name, u.Factor)
		}

		if u.Name == c.BaseUnit {
			baseFound = true
			if c.Kind == CategoryKindLinear && u.Factor != 1 {
				return fmt.Errorf("%w: base unit %q must have factor 1, got %v", ErrValidation, u.Name, u.Factor)
			}
		}
	}

	if !baseFound {
		return fmt.Errorf("%w: base unit %q not found in category %q", ErrValidation, c.BaseUnit, c.Name)
	}

	return nil
}

// Unit returns the unit identified by id, or ErrInvalidUnit.
func (c *Category) Unit(id string) (Unit, error) {
	for _, u := range c.Units {
		if u.Matches(id) {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q is not a %s unit", ErrInvalidUnit, id, c.Name)
}

// UnitNames returns the unit identifiers of the category in table order.
func (c *Category) UnitNames() []string {
	names := make([]string, len(c.Units))
	for i, u := range c.Units {
		names[i] = u.Name
	}
	return names
}

// CategoryInfo is the summary of a category without its unit list.
type CategoryInfo struct {
	Name     string       `json:"name"`
	Kind     CategoryKind `json:"kind"`
	BaseUnit string       `json:"base_unit"`
}

// Info returns the summary of the category.
func (c *Category) Info() CategoryInfo {
	return CategoryInfo{Name: c.Name, Kind: c.Kind, BaseUnit: c.BaseUnit}
}
