package match

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rpsduel/internal/game/move"
)

// TurnStatus tags a TurnResult as a resolved round or a rejected input.
type TurnStatus int

const (
	// TurnResolved means the round completed and state advanced.
	TurnResolved TurnStatus = iota
	// TurnInvalid means the input was rejected and state is untouched.
	TurnInvalid
)

// TurnResult is the structured outcome of one PlayTurn call.
type TurnResult struct {
	// Status distinguishes resolved rounds from rejected input.
	Status TurnStatus
	// Reason explains a rejection; empty for resolved turns.
	Reason string
	// Record is the completed round; nil for rejected turns.
	Record *RoundRecord
	// Score is the post-turn score snapshot.
	Score Score
	// Rounds is the post-turn completed-round count.
	Rounds int
	// Finished is true when this turn ended the match.
	Finished bool
}

// Match is the state machine for one duel. It exclusively owns all mutable
// match state; no other component writes to it. A Match is single-threaded
// by design: each PlayTurn call runs to completion before returning.
type Match struct {
	id        string
	maxRounds int
	rounds    int
	score     Score
	bombs     BombLedger
	history   []RoundRecord
	finished  bool
	policy    Policy
	logger    *zap.Logger
}

// Params configures a new match.
type Params struct {
	// MaxRounds is the total rounds played before forced termination.
	MaxRounds int
	// Policy selects the opponent's moves.
	Policy Policy
	// Logger may be nil; a no-op logger is substituted.
	Logger *zap.Logger
}

// NewMatch creates a match with all-zero scores, both bombs available, and
// an empty round history.
//
// Precondition: p.MaxRounds >= 1 and p.Policy non-nil, or an error is returned.
func NewMatch(p Params) (*Match, error) {
	if p.MaxRounds < 1 {
		return nil, fmt.Errorf("match: max rounds must be >= 1, got %d", p.MaxRounds)
	}
	if p.Policy == nil {
		return nil, fmt.Errorf("match: policy must not be nil")
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{
		id:        uuid.NewString(),
		maxRounds: p.MaxRounds,
		bombs:     NewBombLedger(),
		policy:    p.Policy,
		logger:    logger,
	}, nil
}

// PlayTurn executes one turn from a raw input line: normalize, validate,
// select the opponent's move, resolve, then mutate state as a single
// logical step.
//
// A rejected input returns a TurnInvalid result and leaves the match
// entirely unchanged; the round is not consumed and the caller may simply
// resubmit.
//
// Precondition: the match is not finished. Calling PlayTurn on a finished
// match is a caller defect and panics.
func (m *Match) PlayTurn(raw string) TurnResult {
	if m.finished {
		panic("match: PlayTurn called on finished match")
	}

	userMove, recognized := move.Normalize(raw)
	if v := Validate(userMove, recognized, move.User, m.bombs); !v.Valid {
		m.logger.Debug("turn rejected",
			zap.String("match_id", m.id),
			zap.String("input", raw),
			zap.String("reason", v.Reason),
		)
		return TurnResult{
			Status: TurnInvalid,
			Reason: v.Reason,
			Score:  m.score,
			Rounds: m.rounds,
		}
	}

	opponentMove := m.policy.ChooseMove(m.Snapshot())
	if v := Validate(opponentMove, true, move.Opponent, m.bombs); !v.Valid {
		panic(fmt.Sprintf("match: opponent policy selected illegal move %s: %s", opponentMove, v.Reason))
	}

	verdict := Resolve(userMove, opponentMove)

	// Atomic state mutation: validation is complete, so every step below
	// happens unconditionally.
	record := RoundRecord{
		Round:        m.rounds + 1,
		UserMove:     userMove,
		OpponentMove: opponentMove,
		Winner:       verdict.Winner,
		Reason:       verdict.Reason,
	}
	m.history = append(m.history, record)
	switch verdict.Winner {
	case WinnerUser:
		m.score.User++
	case WinnerOpponent:
		m.score.Opponent++
	}
	if userMove == move.Bomb {
		m.bombs[move.User] = true
	}
	if opponentMove == move.Bomb {
		m.bombs[move.Opponent] = true
	}
	m.rounds++
	if m.rounds == m.maxRounds {
		m.finished = true
	}

	m.logger.Info("round resolved",
		zap.String("match_id", m.id),
		zap.Int("round", record.Round),
		zap.String("user_move", userMove.String()),
		zap.String("opponent_move", opponentMove.String()),
		zap.String("winner", verdict.Winner.String()),
		zap.String("reason", verdict.Reason),
		zap.Bool("finished", m.finished),
	)

	return TurnResult{
		Status:   TurnResolved,
		Record:   &record,
		Score:    m.score,
		Rounds:   m.rounds,
		Finished: m.finished,
	}
}

// ID returns the match identifier.
func (m *Match) ID() string { return m.id }

// Finished reports whether the match has reached its terminal state.
func (m *Match) Finished() bool { return m.finished }

// Rounds returns the completed-round count.
func (m *Match) Rounds() int { return m.rounds }

// MaxRounds returns the configured round limit.
func (m *Match) MaxRounds() int { return m.maxRounds }

// CurrentScore returns the running win counts.
func (m *Match) CurrentScore() Score { return m.score }

// BombAvailable reports whether the party's bomb is still unplayed.
func (m *Match) BombAvailable(p move.Party) bool { return !m.bombs[p] }

// History returns a copy of the completed-round records in order.
//
// Postcondition: len(result) == Rounds(); mutating the copy does not
// affect the match.
func (m *Match) History() []RoundRecord {
	out := make([]RoundRecord, len(m.history))
	copy(out, m.history)
	return out
}

// Snapshot returns the read-only view handed to the policy and renderer.
func (m *Match) Snapshot() Snapshot {
	bombs := NewBombLedger()
	for p, used := range m.bombs {
		bombs[p] = used
	}
	return Snapshot{
		MatchID:   m.id,
		MaxRounds: m.maxRounds,
		Rounds:    m.rounds,
		Score:     m.score,
		BombUsed:  bombs,
		Finished:  m.finished,
	}
}

// Winner returns the match winner: whichever party holds strictly more
// round wins, or WinnerDraw on a tie.
//
// Precondition: the match is finished; panics otherwise.
func (m *Match) Winner() Winner {
	if !m.finished {
		panic("match: Winner called before match finished")
	}
	switch {
	case m.score.User > m.score.Opponent:
		return WinnerUser
	case m.score.Opponent > m.score.User:
		return WinnerOpponent
	default:
		return WinnerDraw
	}
}
