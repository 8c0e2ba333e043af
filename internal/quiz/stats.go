package quiz

// DirectionStats counts graded attempts for one translation direction.
type DirectionStats struct {
	Correct int
	Total   int
}

// Stats holds the session counters. All mutation goes through Record, so
// Correct+Incorrect always equals Total() and the per-direction totals always
// sum to it.
type Stats struct {
	Correct   int
	Incorrect int

	byDirection [2]DirectionStats
}

// Record registers one graded attempt.
func (s *Stats) Record(dir Direction, correct bool) {
	s.byDirection[dir].Total++
	if correct {
		s.Correct++
		s.byDirection[dir].Correct++
	} else {
		s.Incorrect++
	}
}

// Total returns the number of graded attempts so far.
func (s Stats) Total() int {
	return s.Correct + s.Incorrect
}

// Percentage returns the overall score in percent, 0 when nothing was graded.
func (s Stats) Percentage() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total()) * 100
}

// ForDirection returns the counters for one direction.
func (s Stats) ForDirection(dir Direction) DirectionStats {
	return s.byDirection[dir]
}
