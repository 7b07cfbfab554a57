package game

import (
	"github.com/abhisek/neurobattle/internal/bank"
	"github.com/abhisek/neurobattle/internal/result"
)

// Reveal is what the player sees after selecting, before the round advances.
type Reveal struct {
	Question bank.Question
	Selected bank.Choice
	Correct  bool
}

func newReveal(q bank.Question, selected bank.Choice) Reveal {
	return Reveal{Question: q, Selected: selected, Correct: selected == q.Correct}
}

// AIChoice returns the option that was generated.
func (r Reveal) AIChoice() bank.Choice {
	return r.Question.Correct
}

// Outcome is the result of committing an answer.
type Outcome struct {
	Question bank.Question
	Choice   bank.Choice
	Correct  bool
	Score    int
	Finished bool // true if this answer moved the session to Results
}

// Snapshot is the render model handed to the presentation layer.
type Snapshot struct {
	Phase     Phase
	SessionID string

	// RoundNumber is 1-based; zero outside Playing.
	RoundNumber int
	TotalRounds int
	Score       int

	// Set only while Playing.
	Question *bank.Question
	Selected bank.Choice
	Revealed bool
	Correct  bool

	// Set only in Results.
	Result   *result.Tier
	Accuracy int

	// History holds per-round correctness in play order.
	History []bool
}

// IsLastRound reports whether the current round is the final one.
func (s Snapshot) IsLastRound() bool {
	return s.Phase == PhasePlaying && s.RoundNumber == s.TotalRounds
}

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       c.Phase(),
		SessionID:   c.sessionID,
		TotalRounds: c.bank.Len(),
	}

	switch st := c.state.(type) {
	case *playingState:
		q := st.current()
		snap.RoundNumber = st.index + 1
		snap.TotalRounds = len(st.order)
		snap.Score = st.score
		snap.Question = &q
		snap.Selected = st.round.selected
		snap.Revealed = st.round.revealed
		snap.Correct = st.round.revealed && st.round.selected == q.Correct
		snap.History = append([]bool(nil), st.history...)

	case *resultsState:
		snap.TotalRounds = len(st.order)
		snap.Score = st.score
		snap.Accuracy = result.Accuracy(st.score, len(st.order))
		snap.History = append([]bool(nil), st.history...)
		if tier, err := c.FinalResult(); err == nil {
			snap.Result = &tier
		}
	}

	return snap
}
