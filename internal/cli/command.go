package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/vocadrill/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vocadrill",
		Short: "French-Dutch Vocabulary Drill",
		Long: `vocadrill runs an interactive French-Dutch translation quiz in the
terminal. Questions are drawn at random from a bilingual word list and typed
answers are graded with tolerant matching.

Examples:
  vocadrill                       # Practice with ./vocabulary_data.txt
  vocadrill -f chapter3.txt       # Practice with another word list
  vocadrill --seed 42             # Reproducible question order`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.vocadrill.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.VocabFile, "vocab", "f", flags.VocabFile, "Vocabulary file (french | dutch per line)")
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "Random seed for reproducible sessions (0 = time-based)")
	cmd.Flags().IntVarP(&flags.CheckpointEvery, "every", "n", flags.CheckpointEvery, "Ask to continue after every N graded questions")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("quiz.vocabulary_file", cmd.Flags().Lookup("vocab"))
	viper.BindPFlag("quiz.seed", cmd.Flags().Lookup("seed"))
	viper.BindPFlag("quiz.checkpoint_every", cmd.Flags().Lookup("every"))
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

		// Search config in home directory with name ".vocadrill" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vocadrill")
	}

	// Environment variables
	viper.SetEnvPrefix("VOCADRILL")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
