package match

import "rpsduel/internal/game/move"

// Validation is the structured result of a legality check.
type Validation struct {
	// Valid is true when the move may be played.
	Valid bool
	// Reason explains a rejection; empty when Valid.
	Reason string
}

// Validate checks a proposed move against the vocabulary and the party's
// bomb-consumption history. recognized is false when upstream normalization
// failed to map the raw input onto a Move.
//
// Pure function: never mutates the ledger. Bomb consumption is charged only
// after a round fully resolves, so a rejected turn never burns the bomb.
func Validate(m move.Move, recognized bool, p move.Party, ledger BombLedger) Validation {
	if !recognized {
		return Validation{Valid: false, Reason: "unknown move"}
	}
	if m == move.Bomb && ledger[p] {
		return Validation{Valid: false, Reason: "bomb already used"}
	}
	return Validation{Valid: true}
}
