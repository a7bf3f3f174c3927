// Package game runs a Higher or Lower session. A Session deals rounds from a
// catalog, judges guesses and keeps the score until the first wrong answer.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/category"
	"github.com/papapumpkin/perihelion/internal/judge"
	"github.com/papapumpkin/perihelion/internal/telemetry"
)

// Round is one question: is Right's value for Category higher or lower than
// Left's?
type Round struct {
	Number   int
	Category category.Category
	Left     body.Body
	Right    body.Body
}

// Outcome is the result of answering a round.
type Outcome struct {
	Round   Round
	Guess   judge.Guess
	Verdict judge.Verdict
	Score   int    // score after the answer
	Next    *Round // nil once the session has ended
}

// Options configures a Session. Every field is optional.
type Options struct {
	Rand     *rand.Rand         // nil uses a clock-seeded generator
	Settings category.Settings  // zero value enables every category
	Emitter  *telemetry.Emitter // nil disables telemetry
	Logger   *slog.Logger       // nil uses slog.Default()
}

// Session owns the score, the alive flag and the carry-over body.
type Session struct {
	id       string
	catalog  *catalog.Catalog
	settings category.Settings
	selector *category.Selector
	rng      *rand.Rand
	emitter  *telemetry.Emitter
	logger   *slog.Logger

	phase Phase
	score int
	round Round
}

// New creates a session in the configuring phase.
func New(cat *catalog.Catalog, opts Options) *Session {
	s := &Session{
		id:       uuid.NewString(),
		catalog:  cat,
		settings: opts.Settings,
		rng:      opts.Rand,
		emitter:  opts.Emitter,
		logger:   opts.Logger,
	}
	if s.settings.Validate() != nil {
		s.settings = category.DefaultSettings()
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// ID returns the session identifier stamped on telemetry events.
func (s *Session) ID() string { return s.id }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Alive reports whether the session has not ended yet.
func (s *Session) Alive() bool { return s.phase != PhaseEnded }

// Settings returns the enabled categories.
func (s *Session) Settings() category.Settings { return s.settings }

// Round returns the round awaiting an answer. It is the zero Round before
// Start and the losing round after the session has ended.
func (s *Session) Round() Round { return s.round }

// Configure replaces the enabled categories. Settings with nothing enabled
// are rejected with category.ErrInvalidConfiguration and the previous
// settings are kept.
func (s *Session) Configure(settings category.Settings) error {
	if s.phase != PhaseConfiguring {
		return fmt.Errorf("configure: %w: %s", ErrWrongPhase, s.phase)
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Start deals the first round and moves the session to playing.
func (s *Session) Start() (Round, error) {
	if s.phase != PhaseConfiguring {
		return Round{}, fmt.Errorf("start: %w: %s", ErrWrongPhase, s.phase)
	}
	if s.catalog.Len() < 2 {
		return Round{}, fmt.Errorf("%w: catalog has %d", ErrTooFewBodies, s.catalog.Len())
	}
	sel, err := category.NewSelector(s.settings, s.rng)
	if err != nil {
		return Round{}, err
	}
	c, err := sel.Next()
	if err != nil {
		return Round{}, err
	}
	left, err := s.catalog.Draw(c)
	if err != nil {
		return Round{}, fmt.Errorf("draw first body: %w", err)
	}
	right, err := s.catalog.Draw(c)
	if err != nil {
		s.catalog.Return(left)
		return Round{}, fmt.Errorf("draw second body: %w", err)
	}

	s.selector = sel
	s.phase = PhasePlaying
	s.round = Round{Number: 1, Category: c, Left: left, Right: right}

	s.logger.Debug("session started", "session", s.id, "category", c.String(), "single", sel.Single())
	s.emit(telemetry.KindSessionStart, 0, map[string]any{
		"categories": categoryKeys(s.settings),
		"bodies":     s.catalog.Len() + 2,
	})
	s.emitRound()
	return s.round, nil
}

// Answer judges g against the current round. A correct guess scores a point
// and deals the next round with the right body carried over to the left. A
// wrong guess ends the session and returns both bodies to the catalog.
func (s *Session) Answer(g judge.Guess) (Outcome, error) {
	if s.phase != PhasePlaying {
		return Outcome{}, fmt.Errorf("answer: %w: %s", ErrWrongPhase, s.phase)
	}
	r := s.round
	v, err := judge.Judge(r.Left, r.Right, r.Category, g)
	if err != nil {
		return Outcome{}, err
	}
	s.emit(telemetry.KindRoundJudged, r.Number, map[string]any{
		"category":   r.Category.Key(),
		"left":       r.Left.Name(),
		"right":      r.Right.Name(),
		"guess":      g.String(),
		"correct":    v.Correct,
		"free_point": v.FreePoint,
	})

	if !v.Correct {
		s.end("wrong")
		return Outcome{Round: r, Guess: g, Verdict: v, Score: s.score}, nil
	}

	s.score++
	next, err := s.advance()
	if err != nil {
		s.phase = PhaseEnded
		return Outcome{}, err
	}
	return Outcome{Round: r, Guess: g, Verdict: v, Score: s.score, Next: &next}, nil
}

// advance deals the round after a correct answer. In multi-category mode the
// next category is drawn before the used one goes back into the bag, so a
// category never repeats immediately.
func (s *Session) advance() (Round, error) {
	prev := s.round
	s.catalog.Return(prev.Left)

	c := prev.Category
	if !s.selector.Single() {
		next, err := s.selector.Next()
		if err != nil {
			return Round{}, err
		}
		s.selector.Release(c)
		c = next
	}

	right, err := s.catalog.Draw(c)
	if err != nil {
		return Round{}, fmt.Errorf("draw round %d: %w", prev.Number+1, err)
	}
	s.round = Round{Number: prev.Number + 1, Category: c, Left: prev.Right, Right: right}
	s.emitRound()
	return s.round, nil
}

// Quit abandons a session in play. Both dealt bodies go back to the catalog
// and the score stands.
func (s *Session) Quit() error {
	if s.phase != PhasePlaying {
		return fmt.Errorf("quit: %w: %s", ErrWrongPhase, s.phase)
	}
	s.end("quit")
	return nil
}

func (s *Session) end(reason string) {
	s.catalog.Return(s.round.Left)
	s.catalog.Return(s.round.Right)
	s.phase = PhaseEnded
	s.logger.Debug("session ended", "session", s.id, "score", s.score, "rounds", s.round.Number, "reason", reason)
	s.emit(telemetry.KindSessionEnd, s.round.Number, map[string]any{"score": s.score, "reason": reason})
}

func (s *Session) emitRound() {
	s.emit(telemetry.KindRoundStart, s.round.Number, map[string]string{
		"category": s.round.Category.Key(),
		"left":     s.round.Left.Name(),
		"right":    s.round.Right.Name(),
	})
}

func (s *Session) emit(kind string, round int, data any) {
	err := s.emitter.Emit(telemetry.Event{Kind: kind, SessionID: s.id, Round: round, Data: data})
	if err != nil {
		s.logger.Warn("telemetry emit failed", "kind", kind, "error", err)
	}
}

func categoryKeys(settings category.Settings) []string {
	return lo.Map(settings.Enabled(), func(c category.Category, _ int) string { return c.Key() })
}
