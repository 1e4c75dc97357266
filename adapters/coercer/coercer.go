// Package coercer handles deterministic scalar coercion for extracted cell
// values. Rules are ordered and strict: numeric literals first, then boolean
// literals, everything else stays a string. Empty strings coerce to nil so
// downstream treats them as missing.
package coercer

import (
	"math"
	"strconv"
	"strings"
)

// CellType is the declared type tag carried by spreadsheet-markup cells.
type CellType string

const (
	CellFloat      CellType = "float"
	CellPercentage CellType = "percentage"
	CellCurrency   CellType = "currency"
	CellBoolean    CellType = "boolean"
	CellDate       CellType = "date"
	CellTime       CellType = "time"
	CellString     CellType = "string"
)

// Scalar coerces a raw string to its literal value: numbers parse to
// float64, "true"/"false" to bool, blanks to nil, anything else stays a
// trimmed string.
func Scalar(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if n, ok := tryParseNumeric(s); ok {
		return n
	}
	if b, ok := tryParseBoolean(s); ok {
		return b
	}
	return s
}

// Cell coerces a spreadsheet-markup cell through an ordered fallback chain:
// the declared type drives parsing of the declared value, falling back to
// the cell's extracted text, falling back to nil.
//
//	numeric types  -> parse declared value (or text) as a number, else text
//	boolean        -> canonical true/1 and false/0 forms, else text
//	date/time      -> raw declared value passthrough, else text
//	anything else  -> trimmed text, empty normalized to nil
func Cell(declaredType CellType, declaredValue string, text string) any {
	switch declaredType {
	case CellFloat, CellPercentage, CellCurrency:
		candidate := declaredValue
		if candidate == "" {
			candidate = text
		}
		if n, ok := tryParseNumeric(strings.TrimSpace(candidate)); ok {
			return n
		}
		return textOrNil(text)

	case CellBoolean:
		candidate := declaredValue
		if candidate == "" {
			candidate = text
		}
		switch strings.ToLower(strings.TrimSpace(candidate)) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
		return textOrNil(text)

	case CellDate, CellTime:
		if declaredValue != "" {
			return declaredValue
		}
		return textOrNil(text)

	default:
		return textOrNil(text)
	}
}

func textOrNil(text string) any {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	return s
}

// tryParseNumeric attempts a full numeric parse. Infinities and NaN are
// rejected so they never leak into records.
func tryParseNumeric(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// tryParseBoolean accepts only the words true/false, case-insensitive.
// Single-letter and numeric forms stay strings or numbers respectively.
func tryParseBoolean(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
