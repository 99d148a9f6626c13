package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/state"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <file>",
		Short: "List the operations recorded for a dataset file",
		Example: `  # Show everything applied to a file
  leapprep history data.csv

  # As JSON
  leapprep history data.csv --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, args[0])
		},
	}
}

func runHistory(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)

	// Opening the database would create it; an absent file just means
	// nothing has been recorded yet.
	if _, err := os.Stat(cc.Cfg.HistoryPath); os.IsNotExist(err) {
		cc.Renderer.Println("No recorded operations for " + path)
		return nil
	}

	store := state.NewSQLiteStore(cc.Logger)
	if err := store.Open(cc.Cfg.HistoryPath); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.InitSchema(); err != nil {
		return err
	}
	ops, err := store.ListOperations(path)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		cc.Renderer.Println("No recorded operations for " + path)
		return nil
	}

	header := []string{"applied_at", "op", "column", "detail"}
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{
			op.AppliedAt.Format(time.RFC3339),
			op.Op,
			op.Column,
			op.Detail,
		})
	}
	return cc.Renderer.Rows(header, rows)
}
