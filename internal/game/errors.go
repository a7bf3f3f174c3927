package game

import "errors"

var (
	// ErrTooFewBodies is returned by Start when the catalog cannot deal a
	// first round.
	ErrTooFewBodies = errors.New("at least two bodies are needed to play")
	// ErrWrongPhase is returned when an operation is called in a phase that
	// does not allow it.
	ErrWrongPhase = errors.New("operation not allowed in this phase")
	// ErrQuit is returned by a Player to abandon a session without a verdict.
	ErrQuit = errors.New("player quit")
)
