package txn

import (
	"sort"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

// BucketByMonth splits transactions into per-month buckets keyed by
// YYYY-MM, newest month first. Transactions without a parseable date are
// left out.
func BucketByMonth(transactions []model.Transaction) []model.MonthlyData {
	buckets := make(map[string][]model.Transaction)
	for _, t := range transactions {
		if len(t.Date) < 7 {
			continue
		}
		key := t.Date[:7]
		buckets[key] = append(buckets[key], t)
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	months := make([]model.MonthlyData, 0, len(keys))
	for _, key := range keys {
		months = append(months, model.MonthlyData{
			MonthKey:     key,
			Transactions: buckets[key],
			Summary:      CalculateSummary(buckets[key]),
		})
	}
	return months
}
