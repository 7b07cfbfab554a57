package game

import "github.com/abhisek/neurobattle/internal/bank"

// Phase is the session's top-level state.
type Phase int

const (
	PhaseWelcome Phase = iota // Waiting for the player to start
	PhasePlaying              // Serving rounds
	PhaseResults              // All rounds answered
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// phaseState is the sealed set of session states. Data that only exists in
// one phase lives on that phase's struct, so accessors must type-switch.
type phaseState interface {
	phase() Phase
}

type welcomeState struct{}

func (welcomeState) phase() Phase { return PhaseWelcome }

// playingState holds the shuffled order and progress through it.
type playingState struct {
	order   []bank.Question
	index   int
	score   int
	history []bool
	round   round
}

func (*playingState) phase() Phase { return PhasePlaying }

func (s *playingState) current() bank.Question {
	return s.order[s.index]
}

// round is the transient per-round sub-state, cleared on every advance.
type round struct {
	selected bank.Choice
	revealed bool
}

// resultsState is terminal until Restart.
type resultsState struct {
	order   []bank.Question
	score   int
	history []bool
}

func (*resultsState) phase() Phase { return PhaseResults }
