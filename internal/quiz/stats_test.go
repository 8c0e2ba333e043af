package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsRecord(t *testing.T) {
	var s Stats

	s.Record(FrenchToDutch, true)
	s.Record(FrenchToDutch, false)
	s.Record(DutchToFrench, true)

	assert.Equal(t, 3, s.Total())
	assert.Equal(t, 2, s.Correct)
	assert.Equal(t, 1, s.Incorrect)
	assert.Equal(t, DirectionStats{Correct: 1, Total: 2}, s.ForDirection(FrenchToDutch))
	assert.Equal(t, DirectionStats{Correct: 1, Total: 1}, s.ForDirection(DutchToFrench))
}

// Counters must stay conserved under any sequence of recordings: correct plus
// incorrect equals the total, and the per-direction totals sum to it.
func TestStatsConservation(t *testing.T) {
	var s Stats

	script := []struct {
		dir Direction
		ok  bool
	}{
		{FrenchToDutch, true}, {DutchToFrench, false}, {DutchToFrench, true},
		{FrenchToDutch, false}, {FrenchToDutch, true}, {DutchToFrench, true},
	}

	for _, step := range script {
		s.Record(step.dir, step.ok)

		assert.Equal(t, s.Total(), s.Correct+s.Incorrect)
		fd, df := s.ForDirection(FrenchToDutch), s.ForDirection(DutchToFrench)
		assert.Equal(t, s.Total(), fd.Total+df.Total)
		assert.LessOrEqual(t, fd.Correct, fd.Total)
		assert.LessOrEqual(t, df.Correct, df.Total)
	}
}

// The read accessors take value receivers so they work on snapshots returned
// by value, like Game.Stats().
func TestStatsAccessorsOnSnapshot(t *testing.T) {
	snapshot := func() Stats {
		var s Stats
		s.Record(FrenchToDutch, true)
		s.Record(DutchToFrench, false)
		return s
	}

	assert.Equal(t, 2, snapshot().Total())
	assert.InDelta(t, 50.0, snapshot().Percentage(), 0.001)
	assert.Equal(t, DirectionStats{Correct: 1, Total: 1}, snapshot().ForDirection(FrenchToDutch))
}

func TestStatsPercentage(t *testing.T) {
	var s Stats
	assert.Equal(t, 0.0, s.Percentage())

	s.Record(FrenchToDutch, true)
	s.Record(FrenchToDutch, false)
	assert.InDelta(t, 50.0, s.Percentage(), 0.001)

	s.Record(DutchToFrench, true)
	assert.InDelta(t, 66.666, s.Percentage(), 0.001)
}

func TestDirectionLabels(t *testing.T) {
	assert.Equal(t, "french_to_dutch", FrenchToDutch.String())
	assert.Equal(t, "dutch_to_french", DutchToFrench.String())
	assert.NotEqual(t, FrenchToDutch.Arrow(), DutchToFrench.Arrow())
}
