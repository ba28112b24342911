// Package match implements the turn-resolution engine for a best-of-N
// rock/paper/scissors/bomb duel between the user and an automated opponent.
package match

import "rpsduel/internal/game/move"

// Winner identifies which party took a round, or that it was drawn.
type Winner int

const (
	WinnerUser Winner = iota
	WinnerOpponent
	WinnerDraw
)

// String returns a human-readable winner label.
func (w Winner) String() string {
	switch w {
	case WinnerUser:
		return "user"
	case WinnerOpponent:
		return "opponent"
	case WinnerDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of resolving one pair of moves.
type Verdict struct {
	// Winner is the party that took the round, or WinnerDraw.
	Winner Winner
	// Reason is a plain display-agnostic sentence explaining the outcome.
	Reason string
}

// BombLedger tracks whether each party has consumed its one bomb.
//
// Invariant: an entry transitions false→true at most once per match, and
// only as a side effect of a resolved round in which that party played Bomb.
type BombLedger map[move.Party]bool

// NewBombLedger returns a ledger with both bombs still available.
func NewBombLedger() BombLedger {
	return BombLedger{move.User: false, move.Opponent: false}
}

// RoundRecord is an immutable snapshot of one completed round.
type RoundRecord struct {
	// Round is the 1-based round number.
	Round int
	// UserMove and OpponentMove are the moves as resolved.
	UserMove     move.Move
	OpponentMove move.Move
	// Winner is the round verdict.
	Winner Winner
	// Reason is the verdict explanation.
	Reason string
}

// Score holds the running win counts for both parties.
//
// Invariant: User + Opponent <= completed-round count (draws increment neither).
type Score struct {
	User     int
	Opponent int
}

// Snapshot is the read-only view of match state exposed to the opponent
// policy and the presentation layer.
type Snapshot struct {
	// MatchID is the unique identifier assigned at match creation.
	MatchID string
	// MaxRounds is the total number of rounds before forced termination.
	MaxRounds int
	// Rounds is the completed-round count.
	Rounds int
	// Score is the current win counts.
	Score Score
	// BombUsed reports each party's bomb consumption.
	BombUsed BombLedger
	// Finished is true once Rounds == MaxRounds.
	Finished bool
}
