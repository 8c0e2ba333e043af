package match

import "strings"

// punctuation lists the characters deleted during normalization. Accented
// letters are untouched: French grading depends on diacritics, so "école" and
// "ecole" stay distinct.
const punctuation = `.,;:!?()"'-`

// Normalize maps a string to its comparison form: lowercase, trimmed,
// punctuation removed, whitespace runs collapsed to a single space. It is
// total and idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(punctuation, r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Candidates expands a canonical answer into the set of normalized strings
// that are accepted for it. The canonical string may enumerate alternative
// translations with commas and alternative forms with slashes; the whole
// string is itself a candidate, so typing the full answer verbatim is always
// accepted.
func Candidates(correct string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		n := Normalize(s)
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	add(correct)
	for _, part := range strings.Split(correct, ",") {
		for _, alt := range strings.Split(part, "/") {
			add(alt)
		}
	}

	return out
}

// Match reports whether the user's answer is acceptable for the canonical
// answer. It never fails: any pair of strings yields a verdict.
func Match(userAnswer, correctAnswer string) bool {
	normalized := Normalize(userAnswer)
	for _, candidate := range Candidates(correctAnswer) {
		if normalized == candidate {
			return true
		}
	}
	return false
}
