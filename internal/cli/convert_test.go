package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/unitconv/internal/domain"
)

func TestConvertCmd_HasCategoryFlag(t *testing.T) {
	flag := convertCmd.Flags().Lookup("category")
	require.NotNil(t, flag, "category flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "explicit category",
			args:     []string{"convert", "1000", "Meters", "Kilometers", "--category", "Length"},
			expected: "1000 Meters = 1.000000 Kilometers\n",
		},
		{
			name:     "inferred category",
			args:     []string{"convert", "1", "Gallons", "Liters"},
			expected: "1 Gallons = 3.785410 Liters\n",
		},
		{
			name:     "symbols and shorthand flag",
			args:     []string{"convert", "-c", "weight", "1", "kg", "lb"},
			expected: "1 Kilograms = 2.204624 Pounds\n",
		},
		{
			name:     "temperature",
			args:     []string{"convert", "0", "Celsius", "Fahrenheit"},
			expected: "0 Celsius = 32.000000 Fahrenheit\n",
		},
		{
			name:     "negative value after double dash",
			args:     []string{"convert", "--", "-40", "Celsius", "Fahrenheit"},
			expected: "-40 Celsius = -40.000000 Fahrenheit\n",
		},
		{
			name:     "same unit",
			args:     []string{"convert", "5", "Feet", "Feet"},
			expected: "5 Feet = 5.000000 Feet\n",
		},
	}

	cleanup := setupTestServices(t)
	defer cleanup()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestConvertCmd_JSON(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "convert", "32", "Fahrenheit", "Kelvin", "--json")
	require.NoError(t, err)

	var got conversionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Temperature", got.Category)
	assert.Equal(t, "Fahrenheit", got.From)
	assert.Equal(t, "Kelvin", got.To)
	assert.InDelta(t, 273.15, got.Result, 1e-9)
	assert.Equal(t, "273.150000 Kelvin", got.Formatted)
}

func TestConvertCmd_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
		contains    string
	}{
		{
			name:     "wrong arg count",
			args:     []string{"convert", "1", "Meters"},
			contains: "accepts 3 arg(s)",
		},
		{
			name:     "not a number",
			args:     []string{"convert", "abc", "Meters", "Feet"},
			contains: "not a number",
		},
		{
			name:        "unknown unit",
			args:        []string{"convert", "1", "Parsecs", "Meters"},
			expectedErr: domain.ErrInvalidUnit,
		},
		{
			name:        "units of different categories",
			args:        []string{"convert", "1", "Meters", "Liters"},
			expectedErr: domain.ErrInvalidUnit,
		},
		{
			name:        "unit outside explicit category",
			args:        []string{"convert", "1", "Meters", "Feet", "--category", "Volume"},
			expectedErr: domain.ErrInvalidUnit,
		},
		{
			name:        "unknown category",
			args:        []string{"convert", "1", "Meters", "Feet", "--category", "Speed"},
			expectedErr: domain.ErrInvalidCategory,
		},
		{
			name:        "infinite value",
			args:        []string{"convert", "Inf", "Meters", "Feet"},
			expectedErr: domain.ErrInvalidValue,
		},
	}

	cleanup := setupTestServices(t)
	defer cleanup()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)

			require.Error(t, err)
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}
