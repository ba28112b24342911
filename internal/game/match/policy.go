package match

import (
	"rpsduel/internal/game/move"
	"rpsduel/internal/game/rng"
)

// Policy selects the opponent's move from the visible match state.
//
// Implementations must never select a move the opponent is not permitted
// to play; the engine treats a policy returning a burned bomb as an
// internal invariant violation.
type Policy interface {
	ChooseMove(s Snapshot) move.Move
}

// classicMoves is the non-bomb selection pool.
var classicMoves = [3]move.Move{move.Rock, move.Paper, move.Scissors}

// HeuristicPolicy is the default opponent: uniform among the classic moves,
// except that it may play its bomb when the bomb is still available and the
// opponent is either trailing on score or entering the final round.
//
// Aggression is a tunable, not a correctness contract. The only load-bearing
// property is that the bomb can be played while eligible and never after it
// has been consumed.
type HeuristicPolicy struct {
	// Aggression is the probability in [0,1] of playing the bomb when eligible.
	Aggression float64
	// Src provides randomness for move selection.
	Src rng.Source
}

// ChooseMove implements Policy.
//
// Precondition: p.Src must be non-nil.
// Postcondition: Never returns Bomb when s.BombUsed[Opponent] is true.
func (p *HeuristicPolicy) ChooseMove(s Snapshot) move.Move {
	if p.bombEligible(s) && p.Src.Intn(100) < int(p.Aggression*100) {
		return move.Bomb
	}
	return classicMoves[p.Src.Intn(len(classicMoves))]
}

// bombEligible reports whether the heuristic considers the bomb at all:
// still unused, and either the final round is pending or the opponent trails.
func (p *HeuristicPolicy) bombEligible(s Snapshot) bool {
	if s.BombUsed[move.Opponent] {
		return false
	}
	return s.Rounds == s.MaxRounds-1 || s.Score.Opponent < s.Score.User
}
