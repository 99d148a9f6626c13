package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CleanOptions holds flags for the clean command.
type CleanOptions struct {
	Column   string
	Strategy string
	Out      string
}

// NewCleanCommand creates the clean command.
func NewCleanCommand() *cobra.Command {
	opts := &CleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Resolve null values in a column",
		Long: `Resolve null values in one column with a single strategy:

  drop_rows     drop every row where the column is null
  drop_column   drop the column entirely
  fill_average  fill nulls with the column mean (numeric columns only)`,
		Example: `  # Drop rows with a missing age
  leapprep clean data.csv --column age --strategy drop_rows

  # Fill missing scores with the mean
  leapprep clean data.csv --column score --strategy fill_average`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Column, "column", "c", "", "Column to clean (required)")
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "Null-handling strategy (required)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Destination file (default: rewrite in place)")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("strategy")

	return cmd
}

func runClean(cmd *cobra.Command, path string, opts *CleanOptions) error {
	cc := NewCommandContext(cmd)

	d, err := cc.OpenDataset(path)
	if err != nil {
		return err
	}
	if err := d.HandleNulls(opts.Column, opts.Strategy); err != nil {
		return err
	}

	out := opts.Out
	if out == "" {
		out = path
	}
	if err := cc.WriteDataset(d, out); err != nil {
		return err
	}
	if err := cc.RecordOperation(path, "handle_nulls", opts.Column, opts.Strategy); err != nil {
		return err
	}

	cc.Renderer.Println(fmt.Sprintf("%d rows, %d columns remaining", d.Nrow(), len(d.Columns())))
	return nil
}
