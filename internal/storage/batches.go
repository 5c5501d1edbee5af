package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ledgerscope/ledgerscope/internal/common"
	"github.com/ledgerscope/ledgerscope/internal/model"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// SaveBatch records an imported statement file and its transactions in a
// single database transaction. The optional progress callback fires once
// per saved transaction.
func (s *SQLiteStorage) SaveBatch(ctx context.Context, batch model.Batch, transactions []model.Transaction, progress func()) error {
	if batch.ID == "" {
		return fmt.Errorf("batch id must not be empty")
	}

	headersJSON, err := json.Marshal(batch.Headers)
	if err != nil {
		return fmt.Errorf("failed to marshal headers: %w", err)
	}
	columnsJSON, err := json.Marshal(batch.Columns)
	if err != nil {
		return fmt.Errorf("failed to marshal columns: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO batches (id, source_file, headers, columns, imported_at)
		VALUES (?, ?, ?, ?, ?)
	`, batch.ID, batch.SourceFile, string(headersJSON), string(columnsJSON), batch.ImportedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("batch %s: %w", batch.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	if err := saveTransactionsTx(ctx, tx, batch.ID, transactions, progress); err != nil {
		return err
	}

	return tx.Commit()
}

// GetBatch loads one batch by ID.
func (s *SQLiteStorage) GetBatch(ctx context.Context, id string) (*model.Batch, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_file, headers, columns, imported_at
		FROM batches WHERE id = ?
	`, id)

	batch, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("batch %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// ListBatches returns all imported batches, newest first.
func (s *SQLiteStorage) ListBatches(ctx context.Context) ([]model.Batch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_file, headers, columns, imported_at
		FROM batches ORDER BY imported_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	batches := make([]model.Batch, 0)
	for rows.Next() {
		batch, scanErr := scanBatch(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		batches = append(batches, *batch)
	}
	return batches, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(row rowScanner) (*model.Batch, error) {
	var batch model.Batch
	var headersJSON, columnsJSON string

	err := row.Scan(&batch.ID, &batch.SourceFile, &headersJSON, &columnsJSON, &batch.ImportedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(headersJSON), &batch.Headers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal headers: %w", err)
	}
	if err := json.Unmarshal([]byte(columnsJSON), &batch.Columns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal columns: %w", err)
	}
	return &batch, nil
}
