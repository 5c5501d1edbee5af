package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/parse"
)

// detectSample is how many rows the mapper inspects when a header name
// alone is not decisive.
const detectSample = 20

var (
	primaryDatePattern   = regexp.MustCompile(`(?i)(transaction\s*date|txn\s*date|tran\.?\s*date|posting\s*date|^date$|\bdate\b|^dt$)`)
	secondaryDatePattern = regexp.MustCompile(`(?i)value\s*date`)
	creditPattern        = regexp.MustCompile(`(?i)(credit|deposit|^cr\.?$|paid\s*in|inflow|money\s*in)`)
	debitPattern         = regexp.MustCompile(`(?i)(debit|withdrawal|^dr\.?$|paid\s*out|outflow|money\s*out)`)
	balancePattern       = regexp.MustCompile(`(?i)balance|^bal\.?$`)
	amountPattern        = regexp.MustCompile(`(?i)\bamount\b|^amt\.?$|^value$`)
	descriptionPattern   = regexp.MustCompile(`(?i)(description|narration|particulars|details|remarks?|memo|payee|merchant|^name$|transaction\s*(remarks|details))`)
	categoryPattern      = regexp.MustCompile(`(?i)(category|type)`)
)

// typeValues is the closed vocabulary that marks a column as a
// transaction-type column regardless of its header.
var typeValues = map[string]struct{}{
	"debit": {}, "credit": {}, "dr": {}, "cr": {},
	"purchase": {}, "transfer": {}, "withdrawal": {}, "deposit": {},
}

// DetectColumns maps statement headers to semantic slots. Header-name rules
// run in a fixed order per header; each slot keeps its first match. Data
// probes back the rules up when names are unhelpful.
func DetectColumns(headers []string, rows [][]string) model.DetectedColumns {
	var cols model.DetectedColumns

	// Pass 1: date column by name. A real transaction-date header beats a
	// "Value Date" style one, which only serves as a fallback.
	for _, h := range headers {
		if primaryDatePattern.MatchString(h) && !secondaryDatePattern.MatchString(h) {
			cols.Date = h
			break
		}
	}
	if cols.Date == "" {
		for _, h := range headers {
			if secondaryDatePattern.MatchString(h) {
				cols.Date = h
				break
			}
		}
	}

	// Pass 2: remaining slots in header order.
	for i, h := range headers {
		if cols.Date == "" && dateLikeRatio(rows, i) >= 0.5 {
			cols.Date = h
			continue
		}
		if h == cols.Date {
			continue
		}

		switch {
		case cols.CreditAmount == "" && creditPattern.MatchString(h):
			cols.CreditAmount = h
		case cols.DebitAmount == "" && debitPattern.MatchString(h):
			cols.DebitAmount = h
		case cols.Balance == "" && balancePattern.MatchString(h):
			cols.Balance = h
		case cols.Amount == "" && amountPattern.MatchString(h):
			cols.Amount = h
		case cols.Description == "" && descriptionPattern.MatchString(h):
			cols.Description = h
		case cols.Category == "" && (categoryPattern.MatchString(h) || isTypeValueColumn(rows, i)):
			cols.Category = h
		}
	}

	if cols.Description == "" {
		cols.Description = guessDescriptionColumn(headers, rows, &cols)
	}
	if cols.Amount == "" && cols.CreditAmount == "" && cols.DebitAmount == "" {
		cols.Amount = guessAmountColumn(headers, rows, &cols)
	}

	return cols
}

// isTypeValueColumn checks the data-driven override: a small closed set of
// values drawn entirely from the debit/credit vocabulary marks a type
// column even when the header says otherwise.
func isTypeValueColumn(rows [][]string, index int) bool {
	distinct := make(map[string]struct{})
	for _, row := range rows {
		v := strings.ToLower(strings.TrimSpace(cellAt(row, index)))
		if v == "" {
			continue
		}
		distinct[v] = struct{}{}
		if len(distinct) > 5 {
			return false
		}
	}
	if len(distinct) == 0 {
		return false
	}
	for v := range distinct {
		if _, ok := typeValues[v]; !ok {
			return false
		}
	}
	return true
}

func dateLikeRatio(rows [][]string, index int) float64 {
	n := len(rows)
	if n > detectSample {
		n = detectSample
	}
	nonEmpty, dates := 0, 0
	for r := 0; r < n; r++ {
		v := strings.TrimSpace(cellAt(rows[r], index))
		if v == "" {
			continue
		}
		nonEmpty++
		if parse.Date(v) != "" {
			dates++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(dates) / float64(nonEmpty)
}

func numericRatioAt(rows [][]string, index int) float64 {
	n := len(rows)
	if n > detectSample {
		n = detectSample
	}
	nonEmpty, numeric := 0, 0
	for r := 0; r < n; r++ {
		v := strings.TrimSpace(cellAt(rows[r], index))
		if v == "" {
			continue
		}
		nonEmpty++
		if _, ok := parse.Numeric(v); ok {
			numeric++
		}
	}
	if nonEmpty == 0 {
		return 0
	}
	return float64(numeric) / float64(nonEmpty)
}

// guessDescriptionColumn picks the unmapped text column with the most
// distinct values, provided values average more than 3 characters.
func guessDescriptionColumn(headers []string, rows [][]string, cols *model.DetectedColumns) string {
	type candidate struct {
		header   string
		distinct int
	}
	candidates := make([]candidate, 0)

	for i, h := range headers {
		if isMapped(h, cols) {
			continue
		}
		if numericRatioAt(rows, i) > 0.5 {
			continue
		}
		distinct := make(map[string]struct{})
		totalLen, nonEmpty := 0, 0
		for _, row := range rows {
			v := strings.TrimSpace(cellAt(row, i))
			if v == "" {
				continue
			}
			distinct[v] = struct{}{}
			totalLen += len(v)
			nonEmpty++
		}
		if nonEmpty == 0 || float64(totalLen)/float64(nonEmpty) <= 3 {
			continue
		}
		candidates = append(candidates, candidate{header: h, distinct: len(distinct)})
	}

	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distinct > candidates[j].distinct
	})
	return candidates[0].header
}

// guessAmountColumn falls back to the first unmapped column that is mostly
// numeric once currency punctuation is stripped.
func guessAmountColumn(headers []string, rows [][]string, cols *model.DetectedColumns) string {
	for i, h := range headers {
		if isMapped(h, cols) {
			continue
		}
		if numericRatioAt(rows, i) > 0.7 {
			return h
		}
	}
	return ""
}

func isMapped(header string, cols *model.DetectedColumns) bool {
	switch header {
	case "":
		return false
	case cols.Date, cols.Amount, cols.CreditAmount, cols.DebitAmount,
		cols.Description, cols.Category, cols.Balance:
		return true
	}
	return false
}
