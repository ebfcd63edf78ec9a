package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/rhymerank/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rhymerank",
		Short: "English Rhyme Family Ranker",
		Long: `rhymerank groups English words into rhyme families using CMU
Pronouncing Dictionary phonemes and ranks each family by word frequency.

Examples:
  rhymerank --download                    # Fetch the CMU dictionary and run
  rhymerank --by-type -o out/             # Split output by rhyme type
  rhymerank --import-freq zipf_en.txt     # Load a word frequency list`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".local", "share", "rhymerank")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.rhymerank.yaml)")

	// Corpus flags
	cmd.Flags().StringVar(&flags.CMUDictPath, "cmudict", filepath.Join(dataDir, "cmudict.dict"), "Path to the CMU pronouncing dictionary")
	cmd.Flags().BoolVar(&flags.Download, "download", false, "Download the CMU dictionary if missing")

	// Frequency flags
	cmd.Flags().StringVar(&flags.FreqDBPath, "freq-db", filepath.Join(dataDir, "wordfreq.db"), "Path to the word frequency database")
	cmd.Flags().StringVar(&flags.ImportFreq, "import-freq", "", "Import a word/Zipf frequency list into the database and exit")
	cmd.Flags().StringVar(&flags.Locale, "locale", flags.Locale, "Frequency locale to score words against")

	// Pipeline flags
	cmd.Flags().BoolVar(&flags.ByType, "by-type", false, "Classify families by rhyme type and write per-type output")
	cmd.Flags().Float64Var(&flags.MinZipf, "min-zipf", flags.MinZipf, "Exclude words with Zipf frequency below this cutoff")
	cmd.Flags().IntVar(&flags.MinFamilySize, "min-family-size", flags.MinFamilySize, "Drop families with fewer members than this")
	cmd.Flags().IntVar(&flags.MaxVariants, "max-variants", flags.MaxVariants, "Maximum spelling variants shown per family")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Number of aggregation workers")

	// Output flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory for TSV files")
	cmd.Flags().IntVar(&flags.TopPreview, "top", flags.TopPreview, "Number of top families to print per table (0 disables)")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("corpus.cmudict", cmd.Flags().Lookup("cmudict"))
	viper.BindPFlag("frequency.database", cmd.Flags().Lookup("freq-db"))
	viper.BindPFlag("frequency.locale", cmd.Flags().Lookup("locale"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("pipeline.min_zipf", cmd.Flags().Lookup("min-zipf"))
	viper.BindPFlag("pipeline.min_family_size", cmd.Flags().Lookup("min-family-size"))
	viper.BindPFlag("pipeline.max_variants", cmd.Flags().Lookup("max-variants"))
	viper.BindPFlag("pipeline.workers", cmd.Flags().Lookup("workers"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".rhymerank" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rhymerank")
	}

	// Environment variables
	viper.SetEnvPrefix("RHYMERANK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
