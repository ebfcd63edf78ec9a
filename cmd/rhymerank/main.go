package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/rhymerank/internal/cli"
	"codeberg.org/snonux/rhymerank/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	proc := processor.NewProcessor(flags)

	// Handle --import-freq: load the list and exit
	if flags.ImportFreq != "" {
		return proc.ImportFrequencies(flags.ImportFreq)
	}

	return proc.Run(context.Background())
}
