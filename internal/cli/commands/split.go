package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/dataset"
)

// SplitOptions holds flags for the split command.
type SplitOptions struct {
	Test     float64
	Validate float64
	Seed     int64
}

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	opts := &SplitOptions{}
	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Randomly partition rows into train/test/validate sets",
		Long: `Shuffle row indices with a fixed seed and partition them into train,
test, and optionally validate sets. The same seed always produces the
same partitions.`,
		Example: `  # 80/20 train/test split
  leapprep split data.csv --test 0.2

  # Train/test/validate with a fixed seed
  leapprep split data.csv --test 0.2 --validate 0.1 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.Test, "test", 0, "Fraction of rows for the test set (required)")
	cmd.Flags().Float64Var(&opts.Validate, "validate", 0, "Fraction of rows for the validation set")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "Random seed")
	_ = cmd.MarkFlagRequired("test")

	return cmd
}

func runSplit(cmd *cobra.Command, path string, opts *SplitOptions) error {
	cc := NewCommandContext(cmd)

	d, err := cc.OpenDataset(path)
	if err != nil {
		return err
	}
	if err := d.Split(opts.Test, opts.Validate, opts.Seed); err != nil {
		return err
	}

	detail := fmt.Sprintf("test=%v validate=%v seed=%d", opts.Test, opts.Validate, opts.Seed)
	if err := cc.RecordOperation(path, "split", "", detail); err != nil {
		return err
	}

	header := []string{"partition", "rows"}
	var rows [][]string
	for _, part := range []string{dataset.PartitionTrain, dataset.PartitionTest, dataset.PartitionValidate} {
		if indices, ok := d.SplitIndices(part); ok {
			rows = append(rows, []string{part, strconv.Itoa(len(indices))})
		}
	}
	return cc.Renderer.Rows(header, rows)
}
