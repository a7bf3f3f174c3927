// Package judge decides whether a HIGHER/LOWER guess about two bodies is
// correct.
package judge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/category"
)

// ErrInvalidGuess indicates a guess other than HIGHER or LOWER.
var ErrInvalidGuess = errors.New("guess must be HIGHER or LOWER")

// Guess is the player's claim about the right-hand body relative to the left.
type Guess int

// Valid guesses. The zero value is not a guess.
const (
	Higher Guess = iota + 1
	Lower
)

// String returns "HIGHER" or "LOWER".
func (g Guess) String() string {
	switch g {
	case Higher:
		return "HIGHER"
	case Lower:
		return "LOWER"
	default:
		return fmt.Sprintf("Guess(%d)", int(g))
	}
}

// ParseGuess accepts "higher" or "lower" in any case, ignoring surrounding
// whitespace.
func ParseGuess(s string) (Guess, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGHER":
		return Higher, nil
	case "LOWER":
		return Lower, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
	}
}

// Verdict is the result of judging one guess.
type Verdict struct {
	Correct bool
	// FreePoint is set when two non-mass values are equal, which makes the
	// round unwinnable either way and so counts as a win.
	FreePoint bool
}

// Judge decides whether g correctly describes right relative to left for
// category c, which must be valid. Ties are always correct. Mass compares the normalized
// exponents first and only looks at mantissas when the exponents match.
func Judge(left, right body.Body, c category.Category, g Guess) (Verdict, error) {
	if g != Higher && g != Lower {
		return Verdict{}, fmt.Errorf("%w: %v", ErrInvalidGuess, g)
	}
	if !c.Valid() {
		return Verdict{}, fmt.Errorf("%w: %v", category.ErrUnknownCategory, c)
	}

	if c == category.Mass {
		return Verdict{Correct: judgeMass(left.Mass(), right.Mass(), g)}, nil
	}

	l, r := c.Value(left), c.Value(right)
	if l == r {
		return Verdict{Correct: true, FreePoint: true}, nil
	}
	if g == Higher {
		return Verdict{Correct: l <= r}, nil
	}
	return Verdict{Correct: l >= r}, nil
}

// judgeMass never reports a free point: equal masses fall through to the
// non-strict mantissa comparison, which accepts either guess.
func judgeMass(l, r body.Mass, g Guess) bool {
	if l.Exponent != r.Exponent {
		if g == Higher {
			return l.Exponent < r.Exponent
		}
		return l.Exponent > r.Exponent
	}
	if g == Higher {
		return l.Mantissa <= r.Mantissa
	}
	return l.Mantissa >= r.Mantissa
}
