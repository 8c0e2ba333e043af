// Package vocab loads French-Dutch vocabulary pairs from a plain text file.
// Each data line holds one pair as "french | dutch"; blank lines and lines
// starting with # are comments. Malformed lines are skipped with a warning so
// a single typo never blocks a practice session.
package vocab
