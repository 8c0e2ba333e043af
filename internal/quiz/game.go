package quiz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/vocadrill/internal/match"
	"codeberg.org/snonux/vocadrill/internal/vocab"
)

// DefaultCheckpointEvery is how many graded questions pass between
// "continue practicing?" checkpoints.
const DefaultCheckpointEvery = 5

// Config carries the collaborators of a Game. Zero values fall back to
// stdin/stdout, a time-seeded generator and the default checkpoint cadence.
type Config struct {
	Pairs  []vocab.Pair
	Rand   *rand.Rand
	Input  io.Reader
	Output io.Writer
	Logger *zap.Logger
	// CheckpointEvery is the cadence of the continue-practicing prompt.
	CheckpointEvery int
}

// Game drives one interactive practice session.
type Game struct {
	pairs  []vocab.Pair
	rng    *rand.Rand
	stats  Stats
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
	every  int
}

// New creates a game over the given vocabulary. The pair slice must be
// non-empty; the loader guarantees that for any corpus it returns.
func New(cfg Config) *Game {
	g := &Game{
		pairs:  cfg.Pairs,
		rng:    cfg.Rand,
		in:     cfg.Input,
		out:    cfg.Output,
		logger: cfg.Logger,
		every:  cfg.CheckpointEvery,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.in == nil {
		g.in = os.Stdin
	}
	if g.out == nil {
		g.out = os.Stdout
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.every <= 0 {
		g.every = DefaultCheckpointEvery
	}
	return g
}

// Stats returns a snapshot of the session counters.
func (g *Game) Stats() Stats {
	return g.stats
}

// Run plays the session until the user quits, declines to continue at a
// checkpoint, input reaches EOF, or the context is cancelled. The final
// summary is printed exactly once on every path.
func (g *Game) Run(ctx context.Context) {
	g.logger.Debug("Session starting", zap.Int("pairs", len(g.pairs)))
	g.displayWelcome()

	done := make(chan struct{})
	defer close(done)
	lines := readLines(g.in, done)

	for {
		graded, quit := g.askQuestion(ctx, lines)
		if quit {
			break
		}
		if graded && g.stats.Total()%g.every == 0 {
			if !g.checkpoint(ctx, lines) {
				break
			}
		}
	}

	if ctx.Err() != nil {
		fmt.Fprintf(g.out, "\n\n⚠️  Quiz interrupted by user\n")
	}
	g.logger.Debug("Session ended",
		zap.Int("questions", g.stats.Total()),
		zap.Int("correct", g.stats.Correct))
	g.displayFinalResults()
}

// readLines pumps input lines into a channel so the main loop can select
// between user input and cancellation. The channel closes on EOF; closing
// done releases the goroutine when the session ends with input still pending.
func readLines(r io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

// readLine blocks for the next input line. The second return is false when
// the session should end (EOF or cancellation).
func (g *Game) readLine(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case line, ok := <-lines:
		if !ok {
			return "", false
		}
		return strings.TrimSpace(line), true
	case <-ctx.Done():
		return "", false
	}
}

// askQuestion poses one random question and handles the response. It reports
// whether the attempt was graded and whether the session should end.
func (g *Game) askQuestion(ctx context.Context, lines <-chan string) (graded, quit bool) {
	pair := g.pairs[g.rng.Intn(len(g.pairs))]

	var prompt, answer string
	var dir Direction
	if g.rng.Intn(2) == 0 {
		prompt, answer, dir = pair.French, pair.Dutch, FrenchToDutch
	} else {
		prompt, answer, dir = pair.Dutch, pair.French, DutchToFrench
	}

	fmt.Fprintf(g.out, "\n📝 Question %d\n", g.stats.Total()+1)
	fmt.Fprintf(g.out, "%s  Translate: %s\n", dir.Arrow(), prompt)
	fmt.Fprint(g.out, "Your answer: ")

	input, ok := g.readLine(ctx, lines)
	if !ok {
		return false, true
	}

	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return false, true
	case "stats", "statistics", "s":
		g.displayStats()
		return false, false
	case "":
		fmt.Fprintln(g.out, "⚠️  Empty answer! Please try again.")
		return false, false
	}

	correct := match.Match(input, answer)
	g.stats.Record(dir, correct)
	g.logger.Debug("Answer graded",
		zap.Stringer("direction", dir),
		zap.Bool("correct", correct))

	if correct {
		fmt.Fprintln(g.out, "✅ Correct! Well done!")
	} else {
		fmt.Fprintf(g.out, "❌ Incorrect. The correct answer is: %s\n", answer)
	}
	fmt.Fprintf(g.out, "📊 Score: %d/%d (%.1f%%)\n",
		g.stats.Correct, g.stats.Total(), g.stats.Percentage())

	return true, false
}

// checkpoint asks whether to keep practicing. It returns false when the user
// wants to stop.
func (g *Game) checkpoint(ctx context.Context, lines <-chan string) bool {
	fmt.Fprintf(g.out, "\n🎉 You've completed %d questions!\n", g.stats.Total())
	fmt.Fprint(g.out, "Continue practicing? (y/n/stats): ")

	input, ok := g.readLine(ctx, lines)
	if !ok {
		return false
	}

	switch strings.ToLower(input) {
	case "n", "no", "quit", "exit":
		return false
	case "stats", "statistics", "s":
		g.displayStats()
	}
	return true
}

func (g *Game) displayWelcome() {
	fmt.Fprintln(g.out, "🎓 French-Dutch Vocabulary Quiz")
	fmt.Fprintln(g.out, strings.Repeat("=", 40))
	fmt.Fprintf(g.out, "✅ Loaded %d vocabulary pairs\n", len(g.pairs))
	fmt.Fprintln(g.out, "\n📚 Welcome to your French exam preparation!")
	fmt.Fprintln(g.out, "\nHow it works:")
	fmt.Fprintln(g.out, "• You'll get random French ↔ Dutch translation questions")
	fmt.Fprintln(g.out, "• Type your answer and press Enter")
	fmt.Fprintln(g.out, "• Get immediate feedback on each answer")
	fmt.Fprintln(g.out, "• Type 'quit' to exit or 'stats' to see your progress")
	fmt.Fprintln(g.out, "\n"+strings.Repeat("=", 50))
}

func (g *Game) displayStats() {
	fmt.Fprintln(g.out, "\n"+strings.Repeat("=", 40))
	fmt.Fprintln(g.out, "📈 SESSION STATISTICS")
	fmt.Fprintln(g.out, strings.Repeat("=", 40))

	if g.stats.Total() == 0 {
		fmt.Fprintln(g.out, "No questions answered yet!")
		return
	}

	fmt.Fprintf(g.out, "Overall Score: %d/%d (%.1f%%)\n",
		g.stats.Correct, g.stats.Total(), g.stats.Percentage())
	fmt.Fprintf(g.out, "Correct: %d\n", g.stats.Correct)
	fmt.Fprintf(g.out, "Incorrect: %d\n", g.stats.Incorrect)

	fmt.Fprintln(g.out, "\nBy Direction:")
	for _, dir := range []Direction{FrenchToDutch, DutchToFrench} {
		ds := g.stats.ForDirection(dir)
		if ds.Total == 0 {
			continue
		}
		pct := float64(ds.Correct) / float64(ds.Total) * 100
		fmt.Fprintf(g.out, "%s: %d/%d (%.1f%%)\n", dir.Arrow(), ds.Correct, ds.Total, pct)
	}
	fmt.Fprintln(g.out, strings.Repeat("=", 40))
}

func (g *Game) displayFinalResults() {
	fmt.Fprintln(g.out, "\n🎯 FINAL RESULTS 🎯")
	fmt.Fprintln(g.out, strings.Repeat("=", 40))

	if g.stats.Total() == 0 {
		fmt.Fprintln(g.out, "No questions were answered. Come back when you're ready to study! 📚")
		return
	}

	pct := g.stats.Percentage()
	fmt.Fprintf(g.out, "Questions Answered: %d\n", g.stats.Total())
	fmt.Fprintf(g.out, "Correct Answers: %d\n", g.stats.Correct)
	fmt.Fprintf(g.out, "Incorrect Answers: %d\n", g.stats.Incorrect)
	fmt.Fprintf(g.out, "Final Score: %.1f%%\n", pct)

	switch {
	case pct >= 90:
		fmt.Fprintln(g.out, "🌟 Excellent! You're ready for your exam!")
	case pct >= 80:
		fmt.Fprintln(g.out, "👍 Great job! Keep practicing and you'll ace it!")
	case pct >= 70:
		fmt.Fprintln(g.out, "📖 Good progress! A bit more practice will help.")
	case pct >= 60:
		fmt.Fprintln(g.out, "📚 You're getting there! Keep studying.")
	default:
		fmt.Fprintln(g.out, "💪 Don't give up! Practice makes perfect!")
	}

	fmt.Fprintln(g.out, "\nBonne chance avec ton examen! (Good luck with your exam!) 🍀")
}
