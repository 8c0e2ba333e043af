package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "vocadrill" {
		t.Errorf("Expected Use to be 'vocadrill', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Vocabulary Drill") {
		t.Errorf("Expected Short description to contain 'Vocabulary Drill'")
	}

	flagTests := []string{"vocab", "seed", "every", "verbose"}
	for _, name := range flagTests {
		t.Run("flag_"+name, func(t *testing.T) {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("Expected flag %s to exist", name)
			}
		})
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Expected persistent flag config to exist")
	}
}

func TestSetupFlagDefaults(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	vocabFlag := cmd.Flags().Lookup("vocab")
	if vocabFlag == nil {
		t.Fatal("vocab flag not found")
	}
	if vocabFlag.DefValue != "vocabulary_data.txt" {
		t.Errorf("Expected default vocab file to be vocabulary_data.txt, got %s", vocabFlag.DefValue)
	}

	everyFlag := cmd.Flags().Lookup("every")
	if everyFlag == nil {
		t.Fatal("every flag not found")
	}
	if everyFlag.DefValue != "5" {
		t.Errorf("Expected default cadence to be 5, got %s", everyFlag.DefValue)
	}
}

func TestFlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)
	cmd.RunE = func(_ *cobra.Command, _ []string) error { return nil }

	cmd.SetArgs([]string{"--vocab", "words.txt", "--seed", "42", "-n", "3"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if flags.VocabFile != "words.txt" {
		t.Errorf("VocabFile = %q, want words.txt", flags.VocabFile)
	}
	if flags.Seed != 42 {
		t.Errorf("Seed = %d, want 42", flags.Seed)
	}
	if flags.CheckpointEvery != 3 {
		t.Errorf("CheckpointEvery = %d, want 3", flags.CheckpointEvery)
	}
}

func TestViperBinding(t *testing.T) {
	defer viper.Reset()

	flags := NewFlags()
	CreateRootCommand(flags)

	for _, key := range []string{"quiz.vocabulary_file", "quiz.seed", "quiz.checkpoint_every"} {
		t.Run(key, func(t *testing.T) {
			if !viper.IsSet(key) && viper.Get(key) == nil {
				t.Errorf("Expected viper key %s to be bound", key)
			}
		})
	}
}
