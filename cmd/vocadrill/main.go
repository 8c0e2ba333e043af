package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"codeberg.org/snonux/vocadrill/internal/cli"
	"codeberg.org/snonux/vocadrill/internal/quiz"
	"codeberg.org/snonux/vocadrill/internal/vocab"
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
	logger := newLogger(flags.Verbose)
	defer logger.Sync()

	// Bound viper keys resolve flag > config file > default.
	vocabFile := viper.GetString("quiz.vocabulary_file")
	seed := viper.GetInt64("quiz.seed")
	every := viper.GetInt("quiz.checkpoint_every")

	parser := vocab.NewParser(vocabFile, logger)
	pairs, err := parser.Load()
	if err != nil {
		return err
	}

	// A zero seed leaves the generator time-seeded for normal play.
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
		logger.Debug("Using fixed random seed", zap.Int64("seed", seed))
	}

	// An interrupt during a blocking read unwinds the loop; the final
	// summary is still printed before the process exits with status 0.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := quiz.New(quiz.Config{
		Pairs:           pairs,
		Rand:            rng,
		Logger:          logger,
		CheckpointEvery: every,
	})
	game.Run(ctx)

	return nil
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
