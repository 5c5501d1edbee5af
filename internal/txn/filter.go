package txn

import (
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

// ApplyFilters narrows a transaction set by dimension allow-lists, an
// optional date range, and a description search. An empty filter returns
// the input unchanged.
func ApplyFilters(transactions []model.Transaction, filters model.FilterState) []model.Transaction {
	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !matchesDimensions(t, filters.DimensionFilters) {
			continue
		}
		if !matchesDateRange(t, filters.DateRange) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func matchesDimensions(t model.Transaction, filters map[string][]string) bool {
	for name, allowed := range filters {
		if len(allowed) == 0 {
			continue
		}
		value := dimensionValue(t, name)
		found := false
		for _, a := range allowed {
			if value == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// dimensionValue reads a named dimension off a transaction, mirroring the
// grouping extractors: known fields first, then the retained raw row.
func dimensionValue(t model.Transaction, name string) string {
	switch strings.ToLower(name) {
	case "category":
		return t.Category
	case "description":
		return t.Description
	case "type":
		return string(t.Type)
	default:
		if v, ok := t.RawData[name]; ok {
			return v
		}
		return ""
	}
}

// matchesDateRange compares ISO date strings lexically; undated
// transactions fail any active range.
func matchesDateRange(t model.Transaction, r *model.DateRange) bool {
	if r == nil {
		return true
	}
	if t.Date == "" {
		return false
	}
	if r.Start != "" && t.Date < r.Start {
		return false
	}
	if r.End != "" && t.Date > r.End {
		return false
	}
	return true
}
