package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numberPattern matches an unsigned number with an optional fractional part.
// Sign characters are never part of a match.
var numberPattern = regexp.MustCompile(`\d+[,.]?\d*`)

// ExtractNumber reads the first amount written in a free-text answer.
//
// Every "." is treated as a thousands separator and dropped, then the first ","
// becomes the decimal point, so "R$ 1.234,56" reads as 1234.56. Text without
// digits yields 0. The result is never negative and always finite: amounts
// too large for a float64 read as math.MaxFloat64.
func ExtractNumber(text string) float64 {
	if text == "" {
		return 0
	}

	normalized := strings.Replace(strings.ReplaceAll(text, ".", ""), ",", ".", 1)
	match := numberPattern.FindString(normalized)
	if match == "" {
		return 0
	}

	// A leftover comma only appears when the first comma preceded every digit;
	// the amount ends there.
	if i := strings.IndexByte(match, ','); i >= 0 {
		match = match[:i]
	}
	match = strings.TrimSuffix(match, ".")

	d, err := decimal.NewFromString(match)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return math.MaxFloat64
	}
	return f
}
