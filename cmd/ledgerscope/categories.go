package main

import (
	"fmt"

	"github.com/ledgerscope/ledgerscope/internal/aggregate"
	"github.com/ledgerscope/ledgerscope/internal/cli"
	"github.com/ledgerscope/ledgerscope/internal/common"
	"github.com/ledgerscope/ledgerscope/internal/storage"
	"github.com/ledgerscope/ledgerscope/internal/txn"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect and correct transaction categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesGuessCmd())
	cmd.AddCommand(categoriesSetCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the spending breakdown by category",
		RunE:  runCategoriesList,
	}
}

func runCategoriesList(cmd *cobra.Command, _ []string) error {
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

	transactions, err := store.GetTransactions(ctx, "")
	if err != nil {
		return err
	}
	if len(transactions) == 0 {
		return common.NewUserError("no transactions found; run `ledgerscope import` first", nil)
	}

	groups := aggregate.GroupBy(transactions, "category")
	fmt.Println(cli.FormatTitle("Spending by category"))
	for _, g := range groups {
		fmt.Printf("%-24s %5d  total %12.2f  avg %10.2f\n",
			g.Label, g.Count, g.TotalAmount, g.AvgAmount)
	}
	return nil
}

func categoriesGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <description>",
		Short: "Show which category a description would be assigned",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			fmt.Println(txn.AutoCategory(args[0]))
		},
	}
}

func categoriesSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <category> <transaction-id>...",
		Short: "Reassign a category to specific transactions",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCategoriesSet,
	}
	return cmd
}

func runCategoriesSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	category, ids := args[0], args[1:]

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

	updated, err := store.UpdateCategories(ctx, ids, category)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %d of %d transactions to %s", updated, len(ids), category)))
	return nil
}
