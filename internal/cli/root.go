// Package cli provides the command-line interface for LeapPrep.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapprep/internal/cli/commands"
	"github.com/leapstack-labs/leapprep/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leapprep",
		Short: "LeapPrep - Dataset Preparation Toolkit",
		Long: `LeapPrep prepares delimited tabular files for modeling.

It labels every column with a semantic category, a logical type, and an
active flag, validates the labels against a compatibility matrix, and
offers casting, null handling, one-hot encoding, and train/test splitting.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Dataset preparation toolkit built with Go
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./leapprep.yaml)")
	rootCmd.PersistentFlags().String("delimiter", "", "Field delimiter for data files")
	rootCmd.PersistentFlags().String("history", "", "Path to the operation-history database")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|table|csv|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "table", "csv", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewCastCommand())
	rootCmd.AddCommand(commands.NewCleanCommand())
	rootCmd.AddCommand(commands.NewDropCommand())
	rootCmd.AddCommand(commands.NewDummiesCommand())
	rootCmd.AddCommand(commands.NewSplitCommand())
	rootCmd.AddCommand(commands.NewTargetCommand())
	rootCmd.AddCommand(commands.NewHistoryCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
