package txn

import (
	"fmt"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/parse"
)

// Build converts raw rows into normalized transactions using the detected
// column mapping. Rows resolving to a zero amount are dropped; everything
// else is best-effort, never an error.
func Build(headers []string, rows [][]string, cols model.DetectedColumns, batchID string) []model.Transaction {
	idx := headerIndex(headers)

	dateIdx := indexOf(idx, cols.Date)
	amountIdx := indexOf(idx, cols.Amount)
	creditIdx := indexOf(idx, cols.CreditAmount)
	debitIdx := indexOf(idx, cols.DebitAmount)
	descIdx := indexOf(idx, cols.Description)
	categoryIdx := indexOf(idx, cols.Category)

	transactions := make([]model.Transaction, 0, len(rows))
	for n, row := range rows {
		description := strings.TrimSpace(cellAt(row, descIdx))
		if description == "" {
			description = fmt.Sprintf("Row %d", n+1)
		}

		amount, txType := resolveAmount(row, amountIdx, creditIdx, debitIdx)
		if amount == 0 {
			continue
		}

		category := strings.TrimSpace(cellAt(row, categoryIdx))
		if category == "" {
			category = AutoCategory(description)
		}

		raw := make(map[string]string, len(headers))
		for i, h := range headers {
			raw[h] = cellAt(row, i)
		}

		transactions = append(transactions, model.Transaction{
			ID:          fmt.Sprintf("%s-%d", batchID, n+1),
			Date:        parse.Date(cellAt(row, dateIdx)),
			Description: description,
			Amount:      amount,
			Type:        txType,
			Category:    category,
			RawData:     raw,
		})
	}

	return transactions
}

// resolveAmount picks the amount and direction. With separate credit and
// debit columns the credit cell wins when both are nonzero. A single signed
// amount column maps sign to direction and keeps the absolute value.
func resolveAmount(row []string, amountIdx, creditIdx, debitIdx int) (float64, model.TransactionType) {
	if creditIdx >= 0 || debitIdx >= 0 {
		if credit := parse.Amount(cellAt(row, creditIdx)); credit > 0 {
			return credit, model.TypeCredit
		}
		if debit := parse.Amount(cellAt(row, debitIdx)); debit > 0 {
			return debit, model.TypeDebit
		}
		return 0, model.TypeDebit
	}

	if amountIdx >= 0 {
		value := parse.Amount(cellAt(row, amountIdx))
		if value >= 0 {
			return value, model.TypeCredit
		}
		return -value, model.TypeDebit
	}

	return 0, model.TypeDebit
}

// Finalize completes pre-parsed transactions (an OFX statement, say):
// batch-scoped IDs, synthetic descriptions, auto-categories where none is
// set. Zero-amount entries are dropped, matching Build.
func Finalize(transactions []model.Transaction, batchID string) []model.Transaction {
	out := make([]model.Transaction, 0, len(transactions))
	for n, t := range transactions {
		if t.Amount == 0 {
			continue
		}
		t.ID = fmt.Sprintf("%s-%d", batchID, n+1)
		if t.Description == "" {
			t.Description = fmt.Sprintf("Row %d", n+1)
		}
		if t.Category == "" {
			t.Category = AutoCategory(t.Description)
		}
		out = append(out, t)
	}
	return out
}

// CalculateSummary totals a transaction set. Zero transactions yield a
// zeroed summary, never NaN.
func CalculateSummary(transactions []model.Transaction) model.Summary {
	var s model.Summary
	for _, t := range transactions {
		switch t.Type {
		case model.TypeCredit:
			s.TotalCredits += t.Amount
		case model.TypeDebit:
			s.TotalDebits += t.Amount
		}
	}
	s.NetFlow = s.TotalCredits - s.TotalDebits
	s.TransactionCount = len(transactions)
	return s
}

// CorrectCategories applies a batch category correction by transaction id
// and reports how many transactions changed.
func CorrectCategories(transactions []model.Transaction, ids []string, category string) int {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	changed := 0
	for i := range transactions {
		if _, ok := idSet[transactions[i].ID]; ok {
			transactions[i].Category = category
			changed++
		}
	}
	return changed
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

func indexOf(idx map[string]int, header string) int {
	if header == "" {
		return -1
	}
	if i, ok := idx[header]; ok {
		return i
	}
	return -1
}

func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
