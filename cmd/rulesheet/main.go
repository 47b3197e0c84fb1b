// Package main provides the CLI entry point for rulesheet.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/logging"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rulesheet",
		Short: "Convert the age rules research workbook to JSON import files",
		Long: `rulesheet reads the age rules research workbook and writes one JSON file
per database table, numbered in import order.

Configuration comes from the environment (or a .env file):
  RULESHEET_SOURCE         workbook path (default ` + rulesheet.DefaultSourcePath + `)
  RULESHEET_OUTPUT_DIR     output directory (default .)
  RULESHEET_PLAN           YAML file replacing the built-in table plan
  RULESHEET_JURISDICTIONS  YAML file replacing the built-in state codes
  RULESHEET_IMPORT_URL     import tool page shown in the next steps
  LOG_LEVEL                debug, info, warn, or error`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := rulesheet.LoadOptions()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}
	logging.Setup(cmd.ErrOrStderr(), opts.LogLevel)

	r := &reporter{w: cmd.OutOrStdout()}
	r.start(opts.SourcePath)

	summary, err := rulesheet.Convert(cmd.Context(), opts, r.table)
	if err != nil {
		logging.Error("conversion failed", "source", opts.SourcePath, "error", err)
		if errors.Is(err, rulesheet.ErrSourceUnavailable) {
			return fmt.Errorf("%w\nSet RULESHEET_SOURCE (or add it to .env) to the path of the research workbook", err)
		}
		if summary != nil && len(summary.Tables) > 0 {
			r.partial(summary)
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	logging.Info("conversion complete", "files", len(summary.Tables), "rows", summary.TotalRows, "warnings", summary.WarningCount())
	r.finish(summary, opts.ImportURL)
	return nil
}
