package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/pkg/label"
)

// CastOptions holds flags for the cast command.
type CastOptions struct {
	Column     string
	ToType     string
	ToCategory string
	Active     bool
	Format     string
	Out        string
}

// NewCastCommand creates the cast command.
func NewCastCommand() *cobra.Command {
	opts := &CastOptions{}
	cmd := &cobra.Command{
		Use:   "cast <file>",
		Short: "Cast a column's type, category, or active flag",
		Long: `Cast one column of a dataset: convert its values and label to a new
logical type, move its label to a new category, or toggle its active flag.
Type casts are validated against the compatibility matrix; a failed cast
leaves the dataset unchanged.`,
		Example: `  # Parse a string column as datetime
  leapprep cast data.csv --column signup_date --to-type datetime --format 2006-01-02

  # Treat a string column as free text
  leapprep cast data.csv --column review --to-category text

  # Exclude a column from modeling
  leapprep cast data.csv --column id --active=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCast(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Column, "column", "c", "", "Column to cast (required)")
	cmd.Flags().StringVar(&opts.ToType, "to-type", "", "Target type (int|float|str|datetime)")
	cmd.Flags().StringVar(&opts.ToCategory, "to-category", "", "Target category (categorical|numeric|text|datetime)")
	cmd.Flags().BoolVar(&opts.Active, "active", true, "Active flag for the column")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Datetime layout, e.g. 2006-01-02")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Destination file (default: rewrite in place)")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func runCast(cmd *cobra.Command, path string, opts *CastOptions) error {
	cc := NewCommandContext(cmd)

	activeChanged := cmd.Flags().Changed("active")
	selected := 0
	if opts.ToType != "" {
		selected++
	}
	if opts.ToCategory != "" {
		selected++
	}
	if activeChanged {
		selected++
	}
	if selected != 1 {
		return fmt.Errorf("exactly one of --to-type, --to-category, or --active must be given")
	}

	d, err := cc.OpenDataset(path)
	if err != nil {
		return err
	}

	var op, detail string
	switch {
	case opts.ToType != "":
		to := label.Type(opts.ToType)
		if !label.ValidType(to) {
			return fmt.Errorf("unknown type %q (accepted: int, float, str, datetime)", opts.ToType)
		}
		if err := d.CastType(opts.Column, to, opts.Format); err != nil {
			return err
		}
		op, detail = "cast_type", opts.ToType
	case opts.ToCategory != "":
		if err := d.CastCategory(opts.Column, label.Category(opts.ToCategory)); err != nil {
			return err
		}
		op, detail = "cast_category", opts.ToCategory
	default:
		if err := d.CastActive(opts.Column, opts.Active); err != nil {
			return err
		}
		op, detail = "cast_active", strconv.FormatBool(opts.Active)
	}

	out := opts.Out
	if out == "" {
		out = path
	}
	if err := cc.WriteDataset(d, out); err != nil {
		return err
	}
	if err := cc.RecordOperation(path, op, opts.Column, detail); err != nil {
		return err
	}

	l, err := d.Label(opts.Column)
	if err != nil {
		return err
	}
	cc.Renderer.Println(fmt.Sprintf("%s - %s", opts.Column, l))
	return nil
}
