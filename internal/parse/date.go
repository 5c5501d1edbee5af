// Package parse normalizes raw string cells into dates and amounts. Both
// parsers return sentinels on failure (empty string, zero) rather than
// errors so that callers can treat unparseable cells as absent.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoPrefix   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dayFirst    = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	dayMonPat   = regexp.MustCompile(`^(\d{1,2})[./-]([A-Za-z]{3,9})[./-](\d{2}|\d{4})$`)
	serialDigit = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Excel's day zero is 1899-12-30; 25569 days later is the Unix epoch.
const excelEpochOffset = 25569

// fallbackLayouts are tried last, mirroring a permissive generic parser.
var fallbackLayouts = []string{
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"20060102",
}

// Date normalizes a raw cell into an ISO YYYY-MM-DD string. It returns ""
// when the value cannot be read as a date.
func Date(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}

	// Already ISO (possibly with a time suffix): truncate.
	if isoPrefix.MatchString(v) && validISO(v[:10]) {
		return v[:10]
	}

	// D/M/YYYY with ., / or - separators.
	if m := dayFirst.FindStringSubmatch(v); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}

	// D-Mon-YY or D-Mon-YYYY with a named month.
	if m := dayMonPat.FindStringSubmatch(v); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, ok := monthNames[strings.ToLower(m[2])[:3]]
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}
		if ok && day >= 1 && day <= 31 {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}

	// Excel serial dates land in this range for 1982..2050.
	if serialDigit.MatchString(v) {
		if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 30000 && serial < 55000 {
			t := time.Unix(int64((serial-excelEpochOffset)*86400), 0).UTC()
			return t.Format("2006-01-02")
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return ""
}

func validISO(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
