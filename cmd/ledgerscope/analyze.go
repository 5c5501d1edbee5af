package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ledgerscope/ledgerscope/internal/analyze"
	"github.com/ledgerscope/ledgerscope/internal/ingest"
	"github.com/ledgerscope/ledgerscope/internal/model"
	"github.com/ledgerscope/ledgerscope/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a statement or tabular file",
		Long: `Analyze classifies the columns of a CSV, TSV or Excel file, groups the
rows along the most useful dimension, and prints insights, chart
recommendations, and a data quality summary.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Bool("json", false, "Emit the full analysis as JSON")
	cmd.Flags().StringSlice("role", []string{}, "Override a column role as index=role (e.g. 2=measure)")

	_ = viper.BindPFlag("analyze.json", cmd.Flags().Lookup("json"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	table, err := ingest.ReadTable(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	slog.Debug("Loaded table", "file", args[0], "rows", len(table.Rows))

	roleFlags, _ := cmd.Flags().GetStringSlice("role")
	overrides, err := parseRoleOverrides(roleFlags)
	if err != nil {
		return err
	}

	result := analyze.Analyze(table.Headers, table.Rows, overrides)

	if viper.GetBool("analyze.json") {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Println(report.NewCLIFormatter().FormatAnalysis(&result))
	return nil
}

// parseRoleOverrides turns index=role flag values into a classifier
// override map.
func parseRoleOverrides(flags []string) (map[int]model.ColumnRole, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	overrides := make(map[int]model.ColumnRole, len(flags))
	for _, f := range flags {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid role override %q: expected index=role", f)
		}

		var index int
		if _, err := fmt.Sscanf(parts[0], "%d", &index); err != nil {
			return nil, fmt.Errorf("invalid column index %q: %w", parts[0], err)
		}

		role := model.ColumnRole(parts[1])
		switch role {
		case model.RoleDimension, model.RoleMeasure, model.RoleDate, model.RoleIdentifier:
			overrides[index] = role
		default:
			return nil, fmt.Errorf("invalid role %q: expected dimension, measure, date, or identifier", parts[1])
		}
	}
	return overrides, nil
}
