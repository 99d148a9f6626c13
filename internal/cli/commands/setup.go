// Package commands implements the LeapPrep CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/cli/config"
	"github.com/leapstack-labs/leapprep/internal/cli/output"
	"github.com/leapstack-labs/leapprep/internal/dataset"
	"github.com/leapstack-labs/leapprep/internal/state"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds the shared dependencies from the loaded config
// and the command's writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.Current()
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.NewLogger(cfg.Verbose),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// OpenDataset loads a dataset file using the configured delimiter and null
// markers.
func (c *CommandContext) OpenDataset(path string) (*dataset.Dataset, error) {
	delim := ','
	if c.Cfg.Delimiter != "" {
		delim = []rune(c.Cfg.Delimiter)[0]
	}
	return dataset.Open(dataset.Config{
		Path:       path,
		Delimiter:  delim,
		NullValues: c.Cfg.NullValues,
		Logger:     c.Logger,
	})
}

// WriteDataset writes the dataset back to a file, header included.
func (c *CommandContext) WriteDataset(d *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}
	if err := d.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dataset file: %w", err)
	}
	return f.Close()
}

// RecordOperation appends an entry to the operation-history database,
// creating it on first use.
func (c *CommandContext) RecordOperation(datasetPath, op, column, detail string) error {
	dir := filepath.Dir(c.Cfg.HistoryPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	store := state.NewSQLiteStore(c.Logger)
	if err := store.Open(c.Cfg.HistoryPath); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.InitSchema(); err != nil {
		return err
	}
	_, err := store.RecordOperation(datasetPath, op, column, detail)
	return err
}
