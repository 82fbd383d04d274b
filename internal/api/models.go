package api

import (
	"github.com/phrazzld/unitconv/internal/domain"
)

// ConvertRequest defines the payload for the conversion endpoint.
// Value is a pointer so that a missing value is distinguished from zero.
type ConvertRequest struct {
	Category string   `json:"category" validate:"required"`
	From     string   `json:"from"     validate:"required"`
	To       string   `json:"to"       validate:"required"`
	Value    *float64 `json:"value"    validate:"required"`
}

// ConversionResponse defines the successful response of a conversion.
type ConversionResponse struct {
	Category   string  `json:"category"`
	From       string  `json:"from"`
	FromSymbol string  `json:"from_symbol"`
	To         string  `json:"to"`
	ToSymbol   string  `json:"to_symbol"`
	Value      float64 `json:"value"`
	Result     float64 `json:"result"`

	// Formatted is the result with six decimal places and the unit name
	Formatted string `json:"formatted"`
}

// CategoryResponse describes one category in the category listing.
type CategoryResponse struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	BaseUnit string `json:"base_unit"`
}

// UnitResponse describes one unit. Factor is omitted for temperature units.
type UnitResponse struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Factor float64 `json:"factor,omitempty"`
}

// UnitsResponse is the body of the unit listing of a category.
type UnitsResponse struct {
	Category string         `json:"category"`
	Units    []UnitResponse `json:"units"`
}

func conversionToResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Category:   c.Category,
		From:       c.From.Name,
		FromSymbol: c.From.Symbol,
		To:         c.To.Name,
		ToSymbol:   c.To.Symbol,
		Value:      c.Value,
		Result:     c.Result,
		Formatted:  c.Formatted(),
	}
}

func categoriesToResponse(infos []domain.CategoryInfo) []CategoryResponse {
	resp := make([]CategoryResponse, len(infos))
	for i, info := range infos {
		resp[i] = CategoryResponse{
			Name:     info.Name,
			Kind:     string(info.Kind),
			BaseUnit: info.BaseUnit,
		}
	}
	return resp
}

func unitsToResponse(c domain.Category) UnitsResponse {
	resp := UnitsResponse{Category: c.Name, Units: make([]UnitResponse, len(c.Units))}
	for i, u := range c.Units {
		resp.Units[i] = UnitResponse{Name: u.Name, Symbol: u.Symbol, Factor: u.Factor}
	}
	return resp
}
