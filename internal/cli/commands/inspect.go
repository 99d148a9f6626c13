package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/cli/output"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the inferred column labels for a dataset",
		Long: `Load a delimited dataset and show the label assigned to each column:
its semantic category, logical type, and active flag.`,
		Example: `  # Inspect a dataset (auto-detect output format)
  leapprep inspect data/titanic.csv

  # Inspect as JSON
  leapprep inspect data/titanic.csv --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

func runInspect(cmd *cobra.Command, path string) error {
	cc := NewCommandContext(cmd)

	d, err := cc.OpenDataset(path)
	if err != nil {
		return err
	}

	header := []string{"column", "category", "type", "is_active"}
	cols := d.Columns()
	rows := make([][]string, 0, len(cols))
	for _, name := range cols {
		l, err := d.Label(name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			name,
			string(l.Category()),
			string(l.Type()),
			strconv.FormatBool(l.IsActive()),
		})
	}

	if err := cc.Renderer.Rows(header, rows); err != nil {
		return err
	}
	if cc.Renderer.EffectiveMode() == output.ModeTable {
		cc.Renderer.Println(fmt.Sprintf("%d rows, %d columns", d.Nrow(), len(cols)))
	}
	return nil
}
