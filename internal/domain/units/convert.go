package units

import (
	"github.com/phrazzld/unitconv/internal/domain"
)

// Convert converts value from one unit to another within category using the
// built-in table.
func Convert(value float64, from, to, category string) (float64, error) {
	return defaultTable.Convert(value, from, to, category)
}

// Convert converts value from one unit to another within category.
//
// Linear categories compute value * factor(from) / factor(to). Affine
// categories are delegated to ConvertTemperature. When both identifiers
// resolve to the same unit the value is returned unchanged.
func (t *Table) Convert(value float64, from, to, category string) (float64, error) {
	res, err := t.Resolve(domain.ConversionRequest{Category: category, From: from, To: to, Value: value})
	if err != nil {
		return 0, err
	}
	return res.Result, nil
}

// Resolve validates req against the table and performs the conversion,
// returning the canonical units alongside the result.
func (t *Table) Resolve(req domain.ConversionRequest) (*domain.Conversion, error) {
	c, err := t.lookup(req.Category)
	if err != nil {
		return nil, err
	}

	fromUnit, err := c.Unit(req.From)
	if err != nil {
		return nil, err
	}
	toUnit, err := c.Unit(req.To)
	if err != nil {
		return nil, err
	}

	conv := &domain.Conversion{
		Category: c.Name,
		From:     fromUnit,
		To:       toUnit,
		Value:    req.Value,
	}

	switch {
	case fromUnit.Name == toUnit.Name:
		conv.Result = req.Value
	case c.Kind == domain.CategoryKindAffine:
		conv.Result, err = ConvertTemperature(req.Value, fromUnit.Name, toUnit.Name)
		if err != nil {
			return nil, err
		}
	default:
		conv.Result = linear(req.Value, fromUnit.Factor, toUnit.Factor)
	}

	return conv, nil
}

// linear scales value into the base unit and back out to the target unit.
func linear(value, fromFactor, toFactor float64) float64 {
	base := value * fromFactor
	return base / toFactor
}
