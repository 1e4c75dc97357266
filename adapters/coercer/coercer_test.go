package coercer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected any
	}{
		{"integer literal", "1", float64(1)},
		{"decimal literal", "10.5", 10.5},
		{"negative", "-3.25", -3.25},
		{"boolean true", "true", true},
		{"boolean false", "FALSE", false},
		{"plain string", "Bob", "Bob"},
		{"whitespace trimmed", "  Bob  ", "Bob"},
		{"empty is nil", "", nil},
		{"whitespace only is nil", "   ", nil},
		{"single letter t stays a string", "t", "t"},
		{"yes stays a string", "yes", "yes"},
		{"date-like stays a string", "2024-01-15", "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Scalar(tt.raw))
		})
	}
}

func TestCellNumericChain(t *testing.T) {
	t.Run("declared value parses", func(t *testing.T) {
		assert.Equal(t, 42.5, Cell(CellFloat, "42.5", "42,50 €"))
	})

	t.Run("percentage and currency parse as numbers", func(t *testing.T) {
		assert.Equal(t, 0.15, Cell(CellPercentage, "0.15", "15%"))
		assert.Equal(t, 99.9, Cell(CellCurrency, "99.9", "$99.90"))
	})

	t.Run("unparseable declared value falls back to text", func(t *testing.T) {
		assert.Equal(t, "n/a", Cell(CellFloat, "not-a-number", "n/a"))
	})

	t.Run("missing declared value tries the text", func(t *testing.T) {
		assert.Equal(t, float64(7), Cell(CellFloat, "", "7"))
	})
}

func TestCellBooleanChain(t *testing.T) {
	assert.Equal(t, true, Cell(CellBoolean, "true", "TRUE"))
	assert.Equal(t, true, Cell(CellBoolean, "1", ""))
	assert.Equal(t, false, Cell(CellBoolean, "false", "FALSE"))
	assert.Equal(t, false, Cell(CellBoolean, "0", ""))
	// Non-canonical forms fall back to the cell text.
	assert.Equal(t, "maybe", Cell(CellBoolean, "maybe", "maybe"))
}

func TestCellDateChain(t *testing.T) {
	t.Run("declared date passes through raw", func(t *testing.T) {
		assert.Equal(t, "2024-01-15", Cell(CellDate, "2024-01-15", "Jan 15, 2024"))
	})

	t.Run("declared time passes through raw", func(t *testing.T) {
		assert.Equal(t, "PT13H30M", Cell(CellTime, "PT13H30M", "13:30"))
	})

	t.Run("absent declared value falls back to text", func(t *testing.T) {
		assert.Equal(t, "Jan 15, 2024", Cell(CellDate, "", "Jan 15, 2024"))
	})
}

func TestCellTextChain(t *testing.T) {
	assert.Equal(t, "hello", Cell(CellString, "", " hello "))
	assert.Equal(t, "hello", Cell("", "", "hello"))
	// Empty text normalizes to nil.
	assert.Nil(t, Cell(CellString, "", ""))
	assert.Nil(t, Cell("", "", "   "))
}
