// Package aggregate groups transactions and raw rows along arbitrary
// dimensions and computes per-group aggregates.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

// UnknownKey is the bucket for transactions with a blank dimension value.
const UnknownKey = "Unknown"

// Extractor reads one dimension value off a transaction.
type Extractor func(model.Transaction) string

// ExtractorFor builds the dispatch table entry for a dimension name. The
// fixed set {category, description, type, month, dayofweek} is handled
// explicitly; "raw:<header>" and unknown names read the retained raw row.
func ExtractorFor(dimension string) Extractor {
	switch strings.ToLower(dimension) {
	case "category":
		return func(t model.Transaction) string { return t.Category }
	case "description":
		return func(t model.Transaction) string { return t.Description }
	case "type":
		return func(t model.Transaction) string { return string(t.Type) }
	case "month":
		return monthOf
	case "dayofweek":
		return dayOfWeek
	}

	if key, ok := strings.CutPrefix(dimension, "raw:"); ok {
		return func(t model.Transaction) string { return t.RawData[key] }
	}
	return func(t model.Transaction) string { return t.RawData[dimension] }
}

func monthOf(t model.Transaction) string {
	if len(t.Date) < 7 {
		return UnknownKey
	}
	return t.Date[:7]
}

// dayOfWeek anchors the date at local noon before deriving the weekday.
// Midnight would roll over to the previous day in negative-UTC-offset
// zones; noon cannot.
func dayOfWeek(t model.Transaction) string {
	if t.Date == "" {
		return UnknownKey
	}
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", t.Date+"T12:00:00", time.Local)
	if err != nil {
		return UnknownKey
	}
	return parsed.Weekday().String()[:3]
}

// GroupBy buckets transactions by a dimension. Blank keys normalize to
// "Unknown". Groups come back sorted by total amount descending; use Sort
// to re-rank.
func GroupBy(transactions []model.Transaction, dimension string) []model.GroupedData {
	extract := ExtractorFor(dimension)

	index := make(map[string]int)
	groups := make([]model.GroupedData, 0)

	for _, t := range transactions {
		key := strings.TrimSpace(extract(t))
		if key == "" {
			key = UnknownKey
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, model.GroupedData{Key: key, Label: key})
		}

		g := &groups[i]
		g.Transactions = append(g.Transactions, t)
		g.TotalAmount += t.Amount
		g.Count++
		if t.Amount > g.MaxAmount {
			g.MaxAmount = t.Amount
		}
	}

	for i := range groups {
		if groups[i].Count > 0 {
			groups[i].AvgAmount = groups[i].TotalAmount / float64(groups[i].Count)
		}
	}

	Sort(groups, "total")
	return groups
}

// Sort re-ranks groups in place by "total", "count", "average" or "max",
// always descending. Ties keep their previous order.
func Sort(groups []model.GroupedData, by string) {
	var less func(a, b model.GroupedData) bool
	switch by {
	case "count":
		less = func(a, b model.GroupedData) bool { return a.Count > b.Count }
	case "average":
		less = func(a, b model.GroupedData) bool { return a.AvgAmount > b.AvgAmount }
	case "max":
		less = func(a, b model.GroupedData) bool { return a.MaxAmount > b.MaxAmount }
	default:
		less = func(a, b model.GroupedData) bool { return a.TotalAmount > b.TotalAmount }
	}
	sort.SliceStable(groups, func(i, j int) bool { return less(groups[i], groups[j]) })
}
