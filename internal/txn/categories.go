// Package txn converts mapped statement rows into normalized transactions
// and auto-categorizes them with an ordered rule table.
package txn

import "regexp"

// categoryRule pairs a description pattern with the category it assigns.
type categoryRule struct {
	pattern  *regexp.Regexp
	category string
}

func rule(expr, category string) categoryRule {
	return categoryRule{pattern: regexp.MustCompile("(?i)" + expr), category: category}
}

// categoryRules is evaluated top to bottom, first match wins. The order is
// part of the contract: income first, then specific merchants, then broad
// categories, with generic transfer/bank patterns last so they cannot
// shadow anything more specific.
var categoryRules = []categoryRule{
	// Income signals.
	rule(`salary|payroll|wages|stipend`, "Income"),
	rule(`interest\s*(credit|earned|paid)?$|dividend`, "Income"),
	rule(`refund|reversal|cashback|chargeback`, "Refunds"),

	// Specific merchants.
	rule(`swiggy|zomato|dominos|mcdonald|kfc|starbucks|dunkin|subway|burger\s*king`, "Dining"),
	rule(`amazon|flipkart|myntra|ajio|ebay|walmart|target\b`, "Shopping"),
	rule(`netflix|spotify|hotstar|hulu|disney|prime\s*video|youtube\s*premium`, "Subscription"),
	rule(`\buber\b|\bola\b|lyft|rapido`, "Transport"),
	rule(`bigbasket|blinkit|grofers|instamart|dmart|kroger|aldi`, "Groceries"),
	rule(`zerodha|groww|upstox|\bsip\b|mutual\s*fund`, "Investment"),

	// General categories.
	rule(`restaurant|cafe|coffee|pizza|food\s*court|dining|eatery|takeaway`, "Dining"),
	rule(`grocery|groceries|supermarket|provision`, "Groceries"),
	rule(`petrol|diesel|fuel|gas\s*station`, "Fuel"),
	rule(`taxi|cab\b|metro|bus\s|train|irctc|flight|airline|airways|travel`, "Transport"),
	rule(`electricity|power\s*bill|water\s*bill|gas\s*bill|broadband|internet|wifi|recharge|phone\s*bill|utility|\bdth\b`, "Utilities"),
	rule(`pharmacy|hospital|clinic|doctor|medical|medicine|diagnostic|\blab\b`, "Healthcare"),
	rule(`insurance|\blic\b|policy|premium`, "Insurance"),
	rule(`\brent\b|landlord|lease`, "Rent"),
	rule(`\bemi\b|loan|mortgage|repayment`, "Loan"),
	rule(`movie|cinema|pvr|inox|bookmyshow|gaming|concert|entertainment`, "Entertainment"),
	rule(`school|college|tuition|course|udemy|coursera|education|exam\s*fee`, "Education"),
	rule(`subscription|membership`, "Subscription"),
	rule(`shopping|mall\b|store\b|retail`, "Shopping"),
	rule(`invest|stock|brokerage|demat`, "Investment"),

	// Generic fallthroughs stay last.
	rule(`\batm\b|cash\s*withdrawal`, "Cash"),
	rule(`transfer|neft|imps|rtgs|\bupi\b|wire|remittance`, "Transfer"),
	rule(`bank|charge|\bfee\b|penalty|commission`, "Bank Charges"),
}

// DefaultCategory is returned when no rule matches.
const DefaultCategory = "Other"

// AutoCategory assigns a category from the transaction description. Rules
// fire in declaration order; reordering them changes results.
func AutoCategory(description string) string {
	for _, r := range categoryRules {
		if r.pattern.MatchString(description) {
			return r.category
		}
	}
	return DefaultCategory
}
