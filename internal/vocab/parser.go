package vocab

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultFile is the vocabulary file used when no path is given.
const DefaultFile = "vocabulary_data.txt"

// Pair is one vocabulary entry. Either side may enumerate alternative
// translations with commas and alternative forms with slashes, and may carry
// parenthetical hints; pairs store the raw text as written in the file.
type Pair struct {
	French string
	Dutch  string
}

// Parser reads vocabulary pairs from a data file.
type Parser struct {
	filename string
	logger   *zap.Logger
	pairs    []Pair
}

// NewParser creates a parser for the given file.
func NewParser(filename string, logger *zap.Logger) *Parser {
	if filename == "" {
		filename = DefaultFile
	}
	return &Parser{filename: filename, logger: logger}
}

// Load reads the vocabulary file and returns the pairs in file order.
// Comment lines are skipped silently; malformed data lines are skipped with a
// warning naming the line number. Load fails if the file cannot be read, is
// not valid UTF-8, or yields no valid pairs at all.
func (p *Parser) Load() ([]Pair, error) {
	content, err := os.ReadFile(p.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %q: %w", p.filename, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("vocabulary file %q is not valid UTF-8", p.filename)
	}

	p.pairs = nil
	for lineNum, raw := range strings.Split(string(content), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.Contains(line, "|") {
			p.logger.Warn("No separator found, skipping line",
				zap.Int("line", lineNum+1),
				zap.String("text", line))
			continue
		}

		// Split at the first pipe only; further pipes belong to the Dutch side.
		parts := strings.SplitN(line, "|", 2)
		french := strings.TrimSpace(parts[0])
		dutch := strings.TrimSpace(parts[1])
		if french == "" || dutch == "" {
			p.logger.Warn("Empty translation, skipping line",
				zap.Int("line", lineNum+1),
				zap.String("text", line))
			continue
		}

		p.pairs = append(p.pairs, Pair{French: french, Dutch: dutch})
	}

	if len(p.pairs) == 0 {
		return nil, fmt.Errorf("no valid vocabulary pairs found in %q", p.filename)
	}

	p.logger.Info("Vocabulary loaded",
		zap.String("file", p.filename),
		zap.Int("pairs", len(p.pairs)))

	pairs := make([]Pair, len(p.pairs))
	copy(pairs, p.pairs)
	return pairs, nil
}

// Count returns the number of pairs loaded by the last successful Load.
func (p *Parser) Count() int {
	return len(p.pairs)
}
