// Package move defines the closed move and party vocabularies for a duel
// and the exact-match normalization of raw player input.
package move

import "strings"

// Move is one play in a round.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
	Bomb
)

// String returns the canonical lowercase token for the move.
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	case Bomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Party identifies a participant in the match.
type Party int

const (
	User Party = iota
	Opponent
)

// String returns a human-readable party label.
func (p Party) String() string {
	switch p {
	case User:
		return "user"
	case Opponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// tokens maps canonical input tokens to moves. Exact match only; fuzzy
// matching is deliberately absent so rejections stay unambiguous.
var tokens = map[string]Move{
	"rock":     Rock,
	"paper":    Paper,
	"scissors": Scissors,
	"bomb":     Bomb,
}

// Normalize trims and lowercases raw input and maps it onto a Move.
// The second return is false when the input is not a canonical token.
func Normalize(raw string) (Move, bool) {
	m, ok := tokens[strings.ToLower(strings.TrimSpace(raw))]
	return m, ok
}

// beats holds the cyclic dominance rule for the three classic moves.
// Bomb precedence is handled by the resolver, never here.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Beats reports whether a dominates b under the classic cycle.
//
// Precondition: neither a nor b is Bomb.
func Beats(a, b Move) bool {
	return beats[a] == b
}
