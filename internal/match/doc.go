// Package match decides whether a typed answer is an acceptable translation.
// It normalizes both sides of the comparison (case fold, punctuation removal,
// whitespace collapse) and expands canonical answers that list alternatives
// separated by commas or slashes.
package match
