package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/papapumpkin/perihelion/internal/judge"
)

// Player supplies guesses. Implementations re-prompt until they have a valid
// guess, so Guess only fails when input is closed or ctx is canceled.
type Player interface {
	Guess(ctx context.Context, r Round) (judge.Guess, error)
}

// Reporter shows round and session outcomes to the player.
type Reporter interface {
	RoundStarted(r Round)
	RoundJudged(o Outcome)
	GameOver(o Outcome)
}

// Play starts the session if needed and runs rounds until the player is
// wrong. It returns the final score. A Player returning ErrQuit ends the
// session early without an error.
func (s *Session) Play(ctx context.Context, p Player, rep Reporter) (int, error) {
	if s.phase == PhaseConfiguring {
		if _, err := s.Start(); err != nil {
			return 0, err
		}
	}
	for s.phase == PhasePlaying {
		if err := ctx.Err(); err != nil {
			return s.score, err
		}
		r := s.round
		rep.RoundStarted(r)

		g, err := p.Guess(ctx, r)
		if errors.Is(err, ErrQuit) {
			return s.score, s.Quit()
		}
		if err != nil {
			return s.score, fmt.Errorf("round %d: %w", r.Number, err)
		}

		o, err := s.Answer(g)
		if err != nil {
			return s.score, err
		}
		if o.Next == nil {
			rep.GameOver(o)
			break
		}
		rep.RoundJudged(o)
	}
	return s.score, nil
}
