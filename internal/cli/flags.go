package cli

import "codeberg.org/snonux/vocadrill/internal/quiz"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile         string
	VocabFile       string
	Seed            int64
	CheckpointEvery int
	Verbose         bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		VocabFile:       "vocabulary_data.txt",
		CheckpointEvery: quiz.DefaultCheckpointEvery,
	}
}
