package intelligence

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

const (
	maxRecommendations = 6
	topCategoryCut     = 0.10
	highImpactCut      = 0.20
	highImpactShare    = 0.30
	diningCut          = 0.15
	shoppingThreshold  = 5000.0
	shoppingCut        = 0.10
	targetSavingsRate  = 20.0
	maxRecurringPicks  = 3
)

// Recommend ranks actionable savings suggestions for the current month by
// potential monthly impact, capped at six.
func Recommend(current model.MonthlyData) []model.Recommendation {
	recs := make([]model.Recommendation, 0)
	totals := debitTotalsByCategory(current)
	order := categoryOrder(current)

	topCategory, topTotal := "", 0.0
	for _, c := range order {
		if totals[c] > topTotal {
			topCategory, topTotal = c, totals[c]
		}
	}

	if topCategory != "" {
		recs = append(recs, model.Recommendation{
			ID:       "trim-top-category",
			Title:    fmt.Sprintf("Trim %s by 10%%", topCategory),
			Description: fmt.Sprintf("%s is your largest expense at %.2f this month; a 10%% cut frees %.2f",
				topCategory, topTotal, topCategoryCut*topTotal),
			Category: topCategory,
			Effort:   "low",
			Impact:   topCategoryCut * topTotal,
		})

		if current.Summary.TotalDebits > 0 && topTotal > highImpactShare*current.Summary.TotalDebits {
			recs = append(recs, model.Recommendation{
				ID:       "top-category-deep-cut",
				Title:    fmt.Sprintf("%s dominates your spending", topCategory),
				Description: fmt.Sprintf("%s takes more than 30%% of this month's outflow; a 20%% reduction would free %.2f",
					topCategory, highImpactCut*topTotal),
				Category: topCategory,
				Effort:   "medium",
				Impact:   highImpactCut * topTotal,
			})
		}
	}

	recs = append(recs, recurringRecommendations(current)...)

	for _, category := range []string{"Dining", "Entertainment"} {
		if total := totals[category]; total > 0 {
			recs = append(recs, model.Recommendation{
				ID:       "lifestyle-" + strings.ToLower(category),
				Title:    fmt.Sprintf("Set a %s budget", category),
				Description: fmt.Sprintf("Targeting 15%% less %s spending saves %.2f a month",
					strings.ToLower(category), diningCut*total),
				Category: category,
				Effort:   "low",
				Impact:   diningCut * total,
			})
		}
	}

	if total := totals["Shopping"]; total > shoppingThreshold {
		recs = append(recs, model.Recommendation{
			ID:       "impulse-shopping",
			Title:    "Add a cooling-off rule for purchases",
			Description: fmt.Sprintf("Shopping hit %.2f this month; waiting 48 hours before non-essential buys curbs impulse spend",
				total),
			Category: "Shopping",
			Effort:   "medium",
			Impact:   shoppingCut * total,
		})
	}

	if rec, ok := savingsRateRecommendation(current.Summary); ok {
		recs = append(recs, rec)
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Impact > recs[j].Impact })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// recurringRecommendations picks up to three high-value recurring charges:
// subscriptions and insurance premiums worth revisiting.
func recurringRecommendations(current model.MonthlyData) []model.Recommendation {
	candidates := make([]model.Transaction, 0)
	for _, t := range current.Transactions {
		if t.Type != model.TypeDebit {
			continue
		}
		desc := strings.ToLower(t.Description)
		if t.Category == "Subscription" || t.Category == "Insurance" ||
			strings.Contains(desc, "subscription") || strings.Contains(desc, "premium") {
			candidates = append(candidates, t)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Amount > candidates[j].Amount })
	if len(candidates) > maxRecurringPicks {
		candidates = candidates[:maxRecurringPicks]
	}

	recs := make([]model.Recommendation, 0, len(candidates))
	for _, t := range candidates {
		recs = append(recs, model.Recommendation{
			ID:       "recurring-" + t.ID,
			Title:    fmt.Sprintf("Review recurring charge: %s", t.Description),
			Description: fmt.Sprintf("%s costs %.2f a month; cancelling or renegotiating recovers it in full",
				t.Description, t.Amount),
			Category: t.Category,
			Effort:   "low",
			Impact:   t.Amount,
		})
	}
	return recs
}

// savingsRateRecommendation fires when the month's savings rate is below
// the 20% target and there is a positive gap to close.
func savingsRateRecommendation(summary model.Summary) (model.Recommendation, bool) {
	if summary.TotalCredits <= 0 {
		return model.Recommendation{}, false
	}
	rate := summary.NetFlow / summary.TotalCredits * 100
	if rate >= targetSavingsRate {
		return model.Recommendation{}, false
	}
	gap := targetSavingsRate/100*summary.TotalCredits - summary.NetFlow
	if gap <= 0 {
		return model.Recommendation{}, false
	}

	return model.Recommendation{
		ID:    "savings-rate",
		Title: "Close the gap to a 20% savings rate",
		Description: fmt.Sprintf("You saved %.1f%% of income this month; trimming %.2f of expenses reaches the 20%% target",
			rate, gap),
		Category: "Savings",
		Effort:   "high",
		Impact:   gap,
	}, true
}
