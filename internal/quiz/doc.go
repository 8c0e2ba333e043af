// Package quiz runs the interactive translation drill. It picks random
// questions from the loaded vocabulary, grades typed answers through the
// match package, tracks session counters and prints feedback, statistics and
// the final summary.
package quiz
