// Package cli renders match output for the interactive terminal loop.
// It consumes the engine's structured results only; the engine itself has
// no knowledge of formatting, emoji, or prompt wording.
package cli

import (
	"fmt"
	"io"
	"strings"

	"rpsduel/internal/game/match"
	"rpsduel/internal/game/move"
)

// moveLabels are the friendly display labels for each move.
var moveLabels = map[move.Move]string{
	move.Rock:     "rock \U0001FAA8",
	move.Paper:    "paper \U0001F4C4",
	move.Scissors: "scissors ✂️",
	move.Bomb:     "bomb \U0001F4A3",
}

// Label returns the display label for a move.
func Label(m move.Move) string {
	if l, ok := moveLabels[m]; ok {
		return l
	}
	return m.String()
}

// Renderer writes match output to a terminal-style writer.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
//
// Precondition: out must be non-nil.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Rules prints the match rules banner shown once at match start.
func (r *Renderer) Rules(maxRounds int) {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Best of %d rounds. Valid moves: rock, paper, scissors, bomb (once per player).\n", maxRounds)
	b.WriteString("Bomb beats everything; bomb vs bomb is a draw.\n")
	b.WriteString("Invalid input triggers a warning and re-prompt.\n")
	fmt.Fprintf(&b, "Game ends automatically after %d rounds.\n\n", maxRounds)
	fmt.Fprint(r.out, b.String())
}

// Prompt prints the per-turn input prompt.
func (r *Renderer) Prompt() {
	fmt.Fprint(r.out, "Your move: ")
}

// Invalid prints a rejection notice for an unconsumed turn.
func (r *Renderer) Invalid(reason string) {
	var b strings.Builder
	b.WriteString("Invalid move.\n")
	fmt.Fprintf(&b, "Reason: %s.\n", reason)
	b.WriteString("Please enter rock, paper, scissors, or bomb.\n")
	fmt.Fprint(r.out, b.String())
}

// winnerText maps a round or match winner onto its display name.
func winnerText(w match.Winner) string {
	switch w {
	case match.WinnerUser:
		return "You"
	case match.WinnerOpponent:
		return "Opponent"
	default:
		return "Draw"
	}
}

// Round prints the summary of a resolved turn.
//
// Precondition: res.Status == TurnResolved and res.Record non-nil.
func (r *Renderer) Round(res match.TurnResult, maxRounds int) {
	rec := res.Record
	var b strings.Builder
	b.WriteString("\n==== Round Result ====\n")
	fmt.Fprintf(&b, "Round %d/%d\n", rec.Round, maxRounds)
	fmt.Fprintf(&b, "Moves: You=%s | Opponent=%s\n", Label(rec.UserMove), Label(rec.OpponentMove))
	fmt.Fprintf(&b, "Winner: %s\n", winnerText(rec.Winner))
	fmt.Fprintf(&b, "Reason: %s\n", rec.Reason)
	fmt.Fprintf(&b, "Score: You %d - Opponent %d\n", res.Score.User, res.Score.Opponent)
	b.WriteString("======================\n\n")
	fmt.Fprint(r.out, b.String())
}

// Final prints the end-of-match summary.
func (r *Renderer) Final(score match.Score, winner match.Winner) {
	var b strings.Builder
	b.WriteString("\nGame Over\n")
	fmt.Fprintf(&b, "Final Score: You %d - Opponent %d\n", score.User, score.Opponent)
	switch winner {
	case match.WinnerUser:
		b.WriteString("Result: You win\n")
	case match.WinnerOpponent:
		b.WriteString("Result: Opponent wins\n")
	default:
		b.WriteString("Result: Draw\n")
	}
	b.WriteString("\n")
	fmt.Fprint(r.out, b.String())
}
