package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/model"
)

func saveTransactionsTx(ctx context.Context, tx *sql.Tx, batchID string, transactions []model.Transaction, progress func()) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (
			id, batch_id, date, description, amount, type, category, raw_data
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		rawJSON := ""
		if len(txn.RawData) > 0 {
			rawBytes, marshalErr := json.Marshal(txn.RawData)
			if marshalErr != nil {
				return fmt.Errorf("failed to marshal raw data: %w", marshalErr)
			}
			rawJSON = string(rawBytes)
		}

		_, err = stmt.ExecContext(ctx,
			txn.ID, batchID, txn.Date, txn.Description,
			txn.Amount, string(txn.Type), txn.Category, rawJSON)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
		if progress != nil {
			progress()
		}
	}
	return nil
}

// GetTransactions loads transactions, optionally scoped to one batch.
// An empty batchID returns everything, dated newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, batchID string) ([]model.Transaction, error) {
	query := `
		SELECT id, date, description, amount, type, category, raw_data
		FROM transactions
	`
	args := []any{}
	if batchID != "" {
		query += " WHERE batch_id = ?"
		args = append(args, batchID)
	}
	query += " ORDER BY date DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	transactions := make([]model.Transaction, 0)
	for rows.Next() {
		var txn model.Transaction
		var txType, rawJSON string

		err = rows.Scan(&txn.ID, &txn.Date, &txn.Description,
			&txn.Amount, &txType, &txn.Category, &rawJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Type = model.TransactionType(txType)
		if rawJSON != "" {
			if err := json.Unmarshal([]byte(rawJSON), &txn.RawData); err != nil {
				return nil, fmt.Errorf("failed to unmarshal raw data: %w", err)
			}
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}

// UpdateCategories reassigns a category to the given transaction IDs and
// reports how many rows changed.
func (s *SQLiteStorage) UpdateCategories(ctx context.Context, ids []string, category string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(ids)+1)
	args = append(args, category)
	for _, id := range ids {
		args = append(args, id)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET category = ? WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update categories: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count updated rows: %w", err)
	}
	return int(affected), nil
}
