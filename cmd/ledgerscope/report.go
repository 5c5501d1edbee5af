package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ledgerscope/ledgerscope/internal/common"
	"github.com/ledgerscope/ledgerscope/internal/intelligence"
	"github.com/ledgerscope/ledgerscope/internal/report"
	"github.com/ledgerscope/ledgerscope/internal/storage"
	"github.com/ledgerscope/ledgerscope/internal/txn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the multi-month financial report",
		Long: `Report buckets all imported transactions by month and prints monthly
insights, anomalies, next-month predictions, and savings recommendations.`,
		RunE: runReport,
	}

	cmd.Flags().Bool("json", false, "Emit the full report as JSON")
	cmd.Flags().String("batch", "", "Restrict the report to one imported batch")

	_ = viper.BindPFlag("report.json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("report.batch", cmd.Flags().Lookup("batch"))

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

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

	transactions, err := store.GetTransactions(ctx, viper.GetString("report.batch"))
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.NewUserError("no transactions found; run `ledgerscope import` first", nil)
	}

	months := txn.BucketByMonth(transactions)
	result := intelligence.Generate(months)

	if viper.GetBool("report.json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Println(report.NewCLIFormatter().FormatIntelligence(result))
	return nil
}
