package game

// Phase is a stage of the session lifecycle.
type Phase int

const (
	PhaseConfiguring Phase = iota // Settings may still change.
	PhasePlaying                  // A round is waiting for a guess.
	PhaseEnded                    // Lost or quit; terminal.
)

// String returns the snake_case name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseConfiguring:
		return "configuring"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
