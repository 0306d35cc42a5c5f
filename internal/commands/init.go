package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statementlab/internal/catalog"
	"github.com/cleared-dev/statementlab/internal/config"
	"github.com/cleared-dev/statementlab/internal/model"
	"github.com/cleared-dev/statementlab/internal/zones"
)

func newInitCommand() *cobra.Command {
	var format string
	var statement string
	var attemptLog bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write an editable chart of accounts, zone layout and config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			st, err := model.ParseStatementType(statement)
			if err != nil {
				return err
			}
			if format != "json" && format != "csv" {
				return fmt.Errorf("unknown catalog format %q (want json or csv)", format)
			}

			if err := runInit(absDir, format, st, attemptLog); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized statementlab project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "catalog file format: json or csv")
	cmd.Flags().StringVar(&statement, "statement", string(model.BalanceSheet), "default statement for drills")
	cmd.Flags().BoolVar(&attemptLog, "attempt-log", false, "record placement attempts to logs/attempts.csv")

	return cmd
}

func runInit(dir, format string, st model.StatementType, attemptLog bool) error {
	for _, d := range []string{"accounts", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	catalogPath := filepath.Join("accounts", "chart-of-accounts."+format)
	zonesPath := "zones.yaml"

	if err := catalog.DefaultChart().Save(filepath.Join(dir, catalogPath)); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	if err := zones.Save(filepath.Join(dir, zonesPath), zones.Default()); err != nil {
		return fmt.Errorf("writing zones: %w", err)
	}

	cfg := config.Default()
	cfg.Catalog.Path = catalogPath
	cfg.Zones.Path = zonesPath
	cfg.Session.DefaultStatement = string(st)
	cfg.AttemptLog.Enabled = attemptLog
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("logs/\n.env\n"), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	return nil
}
