package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// currencyCleaner strips the symbols and separators banks decorate amounts
// with. The numeric value and sign must survive.
var currencyCleaner = strings.NewReplacer(
	"₹", "",
	"$", "",
	"€", "",
	"£", "",
	",", "",
	" ", "",
	"\t", "",
	" ", "",
)

var zeroLiteral = regexp.MustCompile(`^-?0*\.?0+$|^-?0+\.?0*$`)

// Amount normalizes a raw cell into a float64. Empty or unparseable input
// yields 0, never an error: downstream code treats amount 0 as absent.
func Amount(value string) float64 {
	cleaned := currencyCleaner.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// Numeric reports the cleaned value and whether it parsed strictly. Unlike
// Amount it distinguishes a true zero from garbage.
func Numeric(value string) (float64, bool) {
	cleaned := currencyCleaner.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsNumericText reports whether a cell should count as numeric for column
// classification: its parsed amount is nonzero, or it literally spells zero.
func IsNumericText(value string) bool {
	if Amount(value) != 0 {
		return true
	}
	return zeroLiteral.MatchString(currencyCleaner.Replace(strings.TrimSpace(value)))
}
