package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/neurobattle/internal/bank"
	"github.com/abhisek/neurobattle/internal/result"
)

// Controller owns a single game session and enforces the round protocol.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Controller struct {
	bank      *bank.Bank
	state     phaseState
	shuffle   Shuffler
	newID     func() string
	sessionID string
	logger    *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithShuffler replaces the default random Fisher–Yates shuffler.
func WithShuffler(s Shuffler) Option {
	return func(c *Controller) { c.shuffle = s }
}

// WithSeed makes the shuffle order reproducible. Zero means random.
func WithSeed(seed uint64) Option {
	return func(c *Controller) { c.shuffle = SeededShuffler(seed) }
}

// WithLogger sets the logger used for session events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDGenerator overrides session ID generation.
func WithIDGenerator(f func() string) Option {
	return func(c *Controller) { c.newID = f }
}

// NewController creates a controller in the Welcome phase.
func NewController(b *bank.Bank, opts ...Option) *Controller {
	c := &Controller{
		bank:    b,
		state:   welcomeState{},
		shuffle: SeededShuffler(0),
		newID:   func() string { return uuid.New().String() },
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.state.phase()
}

// Bank returns the question bank the controller plays from.
func (c *Controller) Bank() *bank.Bank {
	return c.bank
}

// StartGame shuffles a fresh copy of the bank and begins round one.
func (c *Controller) StartGame() Snapshot {
	order := c.bank.Questions()
	c.shuffle(order)

	c.sessionID = c.newID()
	c.state = &playingState{
		order:   order,
		history: make([]bool, 0, len(order)),
	}

	c.logger.Debug("game started",
		zap.String("session_id", c.sessionID),
		zap.Int("rounds", len(order)),
	)
	return c.Snapshot()
}

// Select records the player's choice for the current round and reveals the
// outcome without advancing. Repeated calls in the same round return the
// first reveal.
func (c *Controller) Select(choice bank.Choice) (Reveal, error) {
	ps, ok := c.state.(*playingState)
	if !ok {
		return Reveal{}, invalidState("select", c.Phase(), "")
	}
	if !choice.Valid() {
		return Reveal{}, ErrInvalidChoice
	}

	if !ps.round.revealed {
		ps.round = round{selected: choice, revealed: true}
		c.logger.Debug("option selected",
			zap.String("session_id", c.sessionID),
			zap.Int("round", ps.index+1),
			zap.String("choice", string(choice)),
		)
	}
	return newReveal(ps.current(), ps.round.selected), nil
}

// Proceed commits the revealed selection for the current round.
func (c *Controller) Proceed() (Outcome, error) {
	ps, ok := c.state.(*playingState)
	if !ok {
		return Outcome{}, invalidState("proceed", c.Phase(), "")
	}
	if !ps.round.revealed {
		return Outcome{}, invalidState("proceed", c.Phase(), "no option selected this round")
	}
	return c.answer(ps, ps.round.selected)
}

// AnswerCurrentQuestion scores choice against the current question and
// advances. On the last round the session moves directly to Results.
func (c *Controller) AnswerCurrentQuestion(choice bank.Choice) (Outcome, error) {
	ps, ok := c.state.(*playingState)
	if !ok {
		return Outcome{}, invalidState("answer", c.Phase(), "")
	}
	if !choice.Valid() {
		return Outcome{}, ErrInvalidChoice
	}
	if ps.round.revealed && ps.round.selected != choice {
		return Outcome{}, invalidState("answer", c.Phase(), "choice differs from the revealed selection")
	}
	return c.answer(ps, choice)
}

func (c *Controller) answer(ps *playingState, choice bank.Choice) (Outcome, error) {
	q := ps.current()
	correct := choice == q.Correct
	if correct {
		ps.score++
	}
	ps.history = append(ps.history, correct)

	out := Outcome{
		Question: q,
		Choice:   choice,
		Correct:  correct,
		Score:    ps.score,
	}

	c.logger.Debug("round answered",
		zap.String("session_id", c.sessionID),
		zap.Int("round", ps.index+1),
		zap.String("question_id", q.ID),
		zap.Bool("correct", correct),
		zap.Int("score", ps.score),
	)

	if ps.index+1 == len(ps.order) {
		c.state = &resultsState{order: ps.order, score: ps.score, history: ps.history}
		out.Finished = true
		c.logger.Info("game finished",
			zap.String("session_id", c.sessionID),
			zap.Int("score", ps.score),
			zap.Int("rounds", len(ps.order)),
		)
		return out, nil
	}

	ps.index++
	ps.round = round{}
	return out, nil
}

// Restart discards the session and returns to Welcome. Always legal.
func (c *Controller) Restart() Snapshot {
	if c.Phase() != PhaseWelcome {
		c.logger.Debug("game restarted",
			zap.String("session_id", c.sessionID),
			zap.Stringer("from_phase", c.Phase()),
		)
	}
	c.state = welcomeState{}
	c.sessionID = ""
	return c.Snapshot()
}

// CurrentQuestion returns the question for the current round.
func (c *Controller) CurrentQuestion() (bank.Question, error) {
	ps, ok := c.state.(*playingState)
	if !ok {
		return bank.Question{}, invalidState("current question", c.Phase(), "")
	}
	return ps.current(), nil
}

// FinalResult classifies the final score.
func (c *Controller) FinalResult() (result.Tier, error) {
	rs, ok := c.state.(*resultsState)
	if !ok {
		return result.Tier{}, invalidState("final result", c.Phase(), "")
	}
	return result.Classify(rs.score, len(rs.order), c.bank.ResultTiers())
}
