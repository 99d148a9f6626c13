package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/dataset"
)

// DummiesOptions holds flags for the dummies command.
type DummiesOptions struct {
	Column       string
	DropOriginal bool
	DropFirst    bool
	Prefix       string
	PrefixSep    string
	Out          string
}

// NewDummiesCommand creates the dummies command.
func NewDummiesCommand() *cobra.Command {
	opts := &DummiesOptions{}
	cmd := &cobra.Command{
		Use:   "dummies <file>",
		Short: "One-hot encode a categorical column",
		Long: `Create one 0/1 indicator column per distinct value of a column. New
columns are named <prefix><sep><value> and auto-labeled like any added
column.`,
		Example: `  # Encode and keep the original column
  leapprep dummies data.csv --column embarked

  # Encode, drop the original, and omit the first level
  leapprep dummies data.csv --column embarked --drop-original --drop-first`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDummies(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Column, "column", "c", "", "Column to encode (required)")
	cmd.Flags().BoolVar(&opts.DropOriginal, "drop-original", false, "Drop the source column after encoding")
	cmd.Flags().BoolVar(&opts.DropFirst, "drop-first", false, "Omit the first dummy column")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Prefix for dummy names (default: the column name)")
	cmd.Flags().StringVar(&opts.PrefixSep, "prefix-sep", "", "Prefix separator (default: _)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Destination file (default: rewrite in place)")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func runDummies(cmd *cobra.Command, path string, opts *DummiesOptions) error {
	cc := NewCommandContext(cmd)

	d, err := cc.OpenDataset(path)
	if err != nil {
		return err
	}
	before := len(d.Columns())

	err = d.ToDummies(opts.Column, dataset.DummyOptions{
		DropOriginal: opts.DropOriginal,
		DropFirst:    opts.DropFirst,
		Prefix:       opts.Prefix,
		PrefixSep:    opts.PrefixSep,
	})
	if err != nil {
		return err
	}

	out := opts.Out
	if out == "" {
		out = path
	}
	if err := cc.WriteDataset(d, out); err != nil {
		return err
	}
	if err := cc.RecordOperation(path, "to_dummies", opts.Column, ""); err != nil {
		return err
	}

	cc.Renderer.Println(fmt.Sprintf("%d columns (was %d)", len(d.Columns()), before))
	return nil
}
