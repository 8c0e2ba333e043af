package quiz

// Direction says which language is shown as the prompt and which one the
// answer is expected in.
type Direction int

const (
	FrenchToDutch Direction = iota
	DutchToFrench
)

func (d Direction) String() string {
	if d == FrenchToDutch {
		return "french_to_dutch"
	}
	return "dutch_to_french"
}

// Arrow returns the flag decoration shown in prompts and statistics.
func (d Direction) Arrow() string {
	if d == FrenchToDutch {
		return "🇫🇷 → 🇳🇱"
	}
	return "🇳🇱 → 🇫🇷"
}
