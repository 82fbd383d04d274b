package units

import (
	"fmt"
	"strings"

	"github.com/phrazzld/unitconv/internal/domain"
)

// Table maps category names to their units. It is built once and never
// mutated; every accessor returns copies.
type Table struct {
	categories []domain.Category
	index      map[string]int
}

// NewTable builds a table from the given categories, validating each one.
// Category names must be unique (case-insensitive).
func NewTable(categories ...domain.Category) (*Table, error) {
	t := &Table{
		categories: make([]domain.Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		key := strings.ToLower(c.Name)
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", domain.ErrValidation, c.Name)
		}

		c.Units = append([]domain.Unit(nil), c.Units...)
		t.index[key] = len(t.categories)
		t.categories = append(t.categories, c)
	}

	return t, nil
}

// defaultTable is constructed once at package initialisation.
var defaultTable = MustNewTable(DefaultCategories()...)

// MustNewTable is like NewTable but panics on an invalid table.
func MustNewTable(categories ...domain.Category) *Table {
	t, err := NewTable(categories...)
	if err != nil {
		panic(fmt.Sprintf("units: invalid conversion table: %v", err))
	}
	return t
}

// Default returns the built-in conversion table.
func Default() *Table {
	return defaultTable
}

// Categories returns the category summaries in table order.
func (t *Table) Categories() []domain.CategoryInfo {
	infos := make([]domain.CategoryInfo, len(t.categories))
	for i := range t.categories {
		infos[i] = t.categories[i].Info()
	}
	return infos
}

// CategoryNames returns the category names in table order.
func (t *Table) CategoryNames() []string {
	names := make([]string, len(t.categories))
	for i := range t.categories {
		names[i] = t.categories[i].Name
	}
	return names
}

// Category returns a copy of the named category. The lookup is
// case-insensitive.
func (t *Table) Category(name string) (domain.Category, error) {
	c, err := t.lookup(name)
	if err != nil {
		return domain.Category{}, err
	}
	cp := *c
	cp.Units = append([]domain.Unit(nil), c.Units...)
	return cp, nil
}

// Units returns the units of the named category in table order.
func (t *Table) Units(category string) ([]domain.Unit, error) {
	c, err := t.lookup(category)
	if err != nil {
		return nil, err
	}
	return append([]domain.Unit(nil), c.Units...), nil
}

// Factor returns the factor of unit relative to the base unit of category.
// Affine categories have no factors and yield ErrInvalidCategory.
func (t *Table) Factor(category, unit string) (float64, error) {
	c, err := t.lookup(category)
	if err != nil {
		return 0, err
	}
	if c.Kind != domain.CategoryKindLinear {
		return 0, fmt.Errorf("%w: %s has no linear factors", domain.ErrInvalidCategory, c.Name)
	}
	u, err := c.Unit(unit)
	if err != nil {
		return 0, err
	}
	return u.Factor, nil
}

// CategoriesOf returns the names of all categories containing a unit
// identified by unit, in table order.
func (t *Table) CategoriesOf(unit string) []string {
	var names []string
	for i := range t.categories {
		if _, err := t.categories[i].Unit(unit); err == nil {
			names = append(names, t.categories[i].Name)
		}
	}
	return names
}

func (t *Table) lookup(name string) (*domain.Category, error) {
	i, ok := t.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, name)
	}
	return &t.categories[i], nil
}
