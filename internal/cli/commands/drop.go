package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// DropOptions holds flags for the drop command.
type DropOptions struct {
	Columns  []string
	Rows     []int
	NullRows string
	Out      string
}

// NewDropCommand creates the drop command.
func NewDropCommand() *cobra.Command {
	opts := &DropOptions{}
	cmd := &cobra.Command{
		Use:   "drop <file>",
		Short: "Drop columns or rows from a dataset",
		Example: `  # Drop columns (labels are removed with them)
  leapprep drop data.csv --columns cabin,ticket

  # Drop rows by index
  leapprep drop data.csv --rows 0,1,2

  # Drop rows where a column is null
  leapprep drop data.csv --null-rows age`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrop(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Columns, "columns", nil, "Columns to drop")
	cmd.Flags().IntSliceVar(&opts.Rows, "rows", nil, "Row indices to drop")
	cmd.Flags().StringVar(&opts.NullRows, "null-rows", "", "Drop rows where this column is null")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Destination file (default: rewrite in place)")

	return cmd
}

func runDrop(cmd *cobra.Command, path string, opts *DropOptions) error {
	cc := NewCommandContext(cmd)

	selected := 0
	if len(opts.Columns) > 0 {
		selected++
	}
	if len(opts.Rows) > 0 {
		selected++
	}
	if opts.NullRows != "" {
		selected++
	}
	if selected != 1 {
		return fmt.Errorf("exactly one of --columns, --rows, or --null-rows must be given")
	}

	d, err := cc.OpenDataset(path)
	if err != nil {
		return err
	}

	var op, column, detail string
	switch {
	case len(opts.Columns) > 0:
		if err := d.DropColumns(opts.Columns...); err != nil {
			return err
		}
		op, detail = "drop_columns", strings.Join(opts.Columns, ",")
	case len(opts.Rows) > 0:
		if err := d.DropRows(opts.Rows); err != nil {
			return err
		}
		op, detail = "drop_rows", fmt.Sprintf("%d rows", len(opts.Rows))
	default:
		if err := d.DropNullRows(opts.NullRows); err != nil {
			return err
		}
		op, column = "drop_null_rows", opts.NullRows
	}

	out := opts.Out
	if out == "" {
		out = path
	}
	if err := cc.WriteDataset(d, out); err != nil {
		return err
	}
	if err := cc.RecordOperation(path, op, column, detail); err != nil {
		return err
	}

	cc.Renderer.Println(fmt.Sprintf("%d rows, %d columns remaining", d.Nrow(), len(d.Columns())))
	return nil
}
