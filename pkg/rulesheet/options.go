// Package rulesheet converts the age rules research workbook into JSON
// files ready for the database import tool.
package rulesheet

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/jurisdiction"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/logging"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/plan"
	"github.com/divine-age/rulesheet-go/pkg/rulesheet/transform"
)

const (
	// DefaultSourcePath is the workbook converted when RULESHEET_SOURCE is unset.
	DefaultSourcePath = "divine_social_media_age_rules_global_research_v5.xlsx"
	// DefaultImportURL is the page of the import tool that accepts the files.
	DefaultImportURL = "http://localhost:8787/import-export"
)

// Options configures a conversion run.
type Options struct {
	// SourcePath is the workbook to read.
	SourcePath string
	// OutputDir is the directory receiving the JSON files.
	OutputDir string
	// Plan lists the tables to produce, in output order.
	Plan *plan.Plan
	// Jurisdictions resolves state names for pivot tables.
	Jurisdictions transform.Resolver
	// ImportURL is shown in the next-step instructions.
	ImportURL string
	// LogLevel is the minimum level of diagnostic logging.
	LogLevel slog.Level
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		SourcePath:    DefaultSourcePath,
		OutputDir:     ".",
		Plan:          plan.Default(),
		Jurisdictions: jurisdiction.Default(),
		ImportURL:     DefaultImportURL,
		LogLevel:      slog.LevelInfo,
	}
}

// LoadOptions builds Options from the environment. Variables from a .env
// file in the working directory are loaded first when the file exists;
// variables already set take precedence.
func LoadOptions() (Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Options{}, fmt.Errorf("load .env: %w", err)
	}

	opts := DefaultOptions()
	opts.SourcePath = getEnvWithDefault("RULESHEET_SOURCE", opts.SourcePath)
	opts.OutputDir = getEnvWithDefault("RULESHEET_OUTPUT_DIR", opts.OutputDir)
	opts.ImportURL = getEnvWithDefault("RULESHEET_IMPORT_URL", opts.ImportURL)

	level, err := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Options{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	opts.LogLevel = level

	if path := os.Getenv("RULESHEET_PLAN"); path != "" {
		p, err := plan.Load(path)
		if err != nil {
			return Options{}, fmt.Errorf("invalid RULESHEET_PLAN: %w", err)
		}
		opts.Plan = p
	}
	if path := os.Getenv("RULESHEET_JURISDICTIONS"); path != "" {
		l, err := jurisdiction.Load(path)
		if err != nil {
			return Options{}, fmt.Errorf("invalid RULESHEET_JURISDICTIONS: %w", err)
		}
		opts.Jurisdictions = l
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks that every required option is set.
func (o Options) Validate() error {
	switch {
	case o.SourcePath == "":
		return fmt.Errorf("source path is required")
	case o.OutputDir == "":
		return fmt.Errorf("output directory is required")
	case o.Plan == nil:
		return fmt.Errorf("plan is required")
	case o.Jurisdictions == nil:
		return fmt.Errorf("jurisdiction lookup is required")
	}
	return nil
}

// getEnvWithDefault returns the trimmed value of key, or def when unset.
func getEnvWithDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
