package units

import (
	"fmt"

	"github.com/phrazzld/unitconv/internal/domain"
)

// temperatureScale converts between one temperature unit and Celsius.
type temperatureScale struct {
	toCelsius   func(v float64) float64
	fromCelsius func(c float64) float64
}

var temperatureScales = map[string]temperatureScale{
	Celsius: {
		toCelsius:   func(v float64) float64 { return v },
		fromCelsius: func(c float64) float64 { return c },
	},
	Fahrenheit: {
		toCelsius:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		fromCelsius: func(c float64) float64 { return c*9/5 + 32 },
	},
	Kelvin: {
		toCelsius:   func(v float64) float64 { return v - 273.15 },
		fromCelsius: func(c float64) float64 { return c + 273.15 },
	},
}

var temperatures = temperatureCategory()

// ConvertTemperature converts value between Celsius, Fahrenheit and Kelvin,
// going through Celsius. Identical units return value untouched. No bound is
// enforced: values below absolute zero convert like any other.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	fromScale, fromName, err := temperatureScaleFor(from)
	if err != nil {
		return 0, err
	}
	toScale, toName, err := temperatureScaleFor(to)
	if err != nil {
		return 0, err
	}

	if fromName == toName {
		return value, nil
	}

	return toScale.fromCelsius(fromScale.toCelsius(value)), nil
}

func temperatureScaleFor(id string) (temperatureScale, string, error) {
	u, err := temperatures.Unit(id)
	if err != nil {
		return temperatureScale{}, "", err
	}
	scale, ok := temperatureScales[u.Name]
	if !ok {
		return temperatureScale{}, "", fmt.Errorf("%w: no temperature scale for %q", domain.ErrInvalidUnit, u.Name)
	}
	return scale, u.Name, nil
}
