package match

import (
	"fmt"

	"rpsduel/internal/game/move"
)

// Resolve determines the winner of a single round given both moves.
// Rules are applied in precedence order; the first match wins:
//
//  1. Bomb vs bomb → draw.
//  2. Exactly one bomb → that party wins.
//  3. Identical non-bomb moves → draw.
//  4. Cyclic dominance: rock beats scissors, scissors beats paper,
//     paper beats rock.
//
// Pure function: no state access, deterministic in its inputs.
//
// Postcondition: Returns a Verdict with a non-empty Reason. The closed
// four-move vocabulary makes the rules exhaustive; reaching the fallthrough
// indicates a defect and panics rather than defaulting to a winner.
func Resolve(userMove, opponentMove move.Move) Verdict {
	switch {
	case userMove == move.Bomb && opponentMove == move.Bomb:
		return Verdict{Winner: WinnerDraw, Reason: "bomb cancels bomb"}
	case userMove == move.Bomb:
		return Verdict{Winner: WinnerUser, Reason: "bomb beats everything"}
	case opponentMove == move.Bomb:
		return Verdict{Winner: WinnerOpponent, Reason: "bomb beats everything"}
	case userMove == opponentMove:
		return Verdict{Winner: WinnerDraw, Reason: "identical moves"}
	case move.Beats(userMove, opponentMove):
		return Verdict{Winner: WinnerUser, Reason: fmt.Sprintf("%s beats %s", userMove, opponentMove)}
	case move.Beats(opponentMove, userMove):
		return Verdict{Winner: WinnerOpponent, Reason: fmt.Sprintf("%s beats %s", opponentMove, userMove)}
	}
	panic(fmt.Sprintf("match: unresolvable move pair %s vs %s", userMove, opponentMove))
}
