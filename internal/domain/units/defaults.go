package units

import "github.com/phrazzld/unitconv/internal/domain"

// Category names of the built-in table.
const (
	CategoryLength      = "Length"
	CategoryTemperature = "Temperature"
	CategoryWeight      = "Weight"
	CategoryVolume      = "Volume"
)

// Temperature unit names.
const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"
)

// DefaultCategories returns the built-in categories in display order.
// Each call returns fresh slices, so callers may modify the result.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{
			Name:     CategoryLength,
			Kind:     domain.CategoryKindLinear,
			BaseUnit: "Meters",
			Units: []domain.Unit{
				{Name: "Meters", Symbol: "m", Factor: 1},
				{Name: "Kilometers", Symbol: "km", Factor: 1000},
				{Name: "Centimeters", Symbol: "cm", Factor: 0.01},
				{Name: "Millimeters", Symbol: "mm", Factor: 0.001},
				{Name: "Miles", Symbol: "mi", Factor: 1609.34},
				{Name: "Feet", Symbol: "ft", Factor: 0.3048},
				{Name: "Inches", Symbol: "in", Factor: 0.0254},
				{Name: "Yards", Symbol: "yd", Factor: 0.9144},
			},
		},
		temperatureCategory(),
		{
			Name:     CategoryWeight,
			Kind:     domain.CategoryKindLinear,
			BaseUnit: "Kilograms",
			Units: []domain.Unit{
				{Name: "Kilograms", Symbol: "kg", Factor: 1},
				{Name: "Grams", Symbol: "g", Factor: 0.001},
				{Name: "Milligrams", Symbol: "mg", Factor: 0.000001},
				{Name: "Pounds", Symbol: "lb", Factor: 0.453592},
				{Name: "Ounces", Symbol: "oz", Factor: 0.0283495},
				{Name: "Tons", Symbol: "t", Factor: 907.185},
			},
		},
		{
			Name:     CategoryVolume,
			Kind:     domain.CategoryKindLinear,
			BaseUnit: "Liters",
			Units: []domain.Unit{
				{Name: "Liters", Symbol: "L", Factor: 1},
				{Name: "Milliliters", Symbol: "mL", Factor: 0.001},
				{Name: "Cubic Meters", Symbol: "m³", Factor: 1000},
				{Name: "Gallons", Symbol: "gal", Factor: 3.78541},
				{Name: "Quarts", Symbol: "qt", Factor: 0.946353},
				{Name: "Pints", Symbol: "pt", Factor: 0.473176},
				{Name: "Cups", Symbol: "cup", Factor: 0.236588},
			},
		},
	}
}

// temperatureCategory has no factors: its units are related by offsets.
func temperatureCategory() domain.Category {
	return domain.Category{
		Name:     CategoryTemperature,
		Kind:     domain.CategoryKindAffine,
		BaseUnit: Celsius,
		Units: []domain.Unit{
			{Name: Celsius, Symbol: "°C"},
			{Name: Fahrenheit, Symbol: "°F"},
			{Name: Kelvin, Symbol: "K"},
		},
	}
}
