package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerscope/ledgerscope/internal/classify"
	"github.com/ledgerscope/ledgerscope/internal/cli"
	"github.com/ledgerscope/ledgerscope/internal/common"
	"github.com/ledgerscope/ledgerscope/internal/ingest"
	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/storage"
	"github.com/ledgerscope/ledgerscope/internal/txn"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement into the local database",
		Long: `Import reads a CSV, TSV, Excel or OFX/QFX statement, maps it onto
transaction fields, normalizes and auto-categorizes every row, and stores
the result as a batch in the local database.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Show what would be imported without saving")

	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	batchID := uuid.NewString()

	batch := model.Batch{
		ID:         batchID,
		SourceFile: args[0],
		ImportedAt: time.Now().UTC(),
	}

	var transactions []model.Transaction
	var rowCount int

	switch strings.ToLower(filepath.Ext(args[0])) {
	case ".ofx", ".qfx":
		parsed, err := ingest.ReadOFX(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		transactions = txn.Finalize(parsed, batchID)
		rowCount = len(parsed)
	default:
		table, err := ingest.ReadTable(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		cols := classify.DetectColumns(table.Headers, table.Rows)
		if cols.Date == "" && cols.Amount == "" && cols.CreditAmount == "" && cols.DebitAmount == "" {
			return common.NewUserError(
				fmt.Sprintf("%s does not look like a bank statement: no date or amount column found", args[0]), nil)
		}
		common.LogDebug("Detected statement columns", common.Fields{
			"date":   cols.Date,
			"amount": cols.Amount,
			"credit": cols.CreditAmount,
			"debit":  cols.DebitAmount,
		})

		transactions = txn.Build(table.Headers, table.Rows, cols, batchID)
		rowCount = len(table.Rows)
		batch.Headers = table.Headers
		batch.Columns = cols
	}

	summary := txn.CalculateSummary(transactions)

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Importing %s", args[0])))
	fmt.Printf("%d rows, %d transactions, credits %.2f, debits %.2f\n",
		rowCount, summary.TransactionCount, summary.TotalCredits, summary.TotalDebits)

	if viper.GetBool("import.dry_run") {
		fmt.Println(cli.FormatWarning("Dry run: nothing saved"))
		return nil
	}

	dbPath, err := databasePath()
	if err != nil {
		return err
	}
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	bar := progressbar.NewOptions(len(transactions),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Saving transactions..."),
	)

	if err := store.SaveBatch(ctx, batch, transactions, func() { _ = bar.Add(1) }); err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	common.LogInfo("Imported batch", common.Fields{
		"batch":        batchID,
		"transactions": len(transactions),
	})
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported batch %s with %d transactions", batchID, len(transactions))))
	return nil
}
