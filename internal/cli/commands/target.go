package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TargetOptions holds flags for the target command.
type TargetOptions struct {
	Column string
}

// NewTargetCommand creates the target command.
func NewTargetCommand() *cobra.Command {
	opts := &TargetOptions{}
	cmd := &cobra.Command{
		Use:   "target <file>",
		Short: "Mark a column as the supervised-learning target",
		Long: `Mark one column of a dataset as the target for modeling. The choice is
recorded in the operation history so later runs can see which column a
file is being prepared for.`,
		Example: `  # Mark the label column
  leapprep target data.csv --column survived`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTarget(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Column, "column", "c", "", "Target column (required)")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func runTarget(cmd *cobra.Command, path string, opts *TargetOptions) error {
	cc := NewCommandContext(cmd)

	d, err := cc.OpenDataset(path)
	if err != nil {
		return err
	}
	if err := d.SetTarget(opts.Column); err != nil {
		return err
	}
	if err := cc.RecordOperation(path, "set_target", opts.Column, ""); err != nil {
		return err
	}

	l, err := d.Label(opts.Column)
	if err != nil {
		return err
	}
	cc.Renderer.Println(fmt.Sprintf("target: %s - %s", opts.Column, l))
	return nil
}
