package console

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned by the parse functions for unrecognized input.
var ErrInvalidInput = errors.New("invalid input")

// Command is a pregame menu choice.
type Command int

// Menu commands.
const (
	CommandStart Command = iota + 1
	CommandChange
	CommandViewSettings
	CommandViewInstructions
)

// String returns the command as typed by the player.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "START"
	case CommandChange:
		return "CHANGE"
	case CommandViewSettings:
		return "VIEW SETTINGS"
	case CommandViewInstructions:
		return "VIEW INSTRUCTIONS"
	default:
		return "unknown"
	}
}

// normalize upper-cases s, trims it and collapses inner whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// ParseCommand parses a menu command, ignoring case and extra spaces.
func ParseCommand(s string) (Command, error) {
	switch normalize(s) {
	case "START":
		return CommandStart, nil
	case "CHANGE":
		return CommandChange, nil
	case "VIEW SETTINGS":
		return CommandViewSettings, nil
	case "VIEW INSTRUCTIONS":
		return CommandViewInstructions, nil
	default:
		return 0, fmt.Errorf("%w: command %q", ErrInvalidInput, s)
	}
}

// ParseYesNo accepts Y, N, YES or NO.
func ParseYesNo(s string) (bool, error) {
	switch normalize(s) {
	case "Y", "YES":
		return true, nil
	case "N", "NO":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected Y or N, got %q", ErrInvalidInput, s)
	}
}

// ParseToggle accepts ON or OFF.
func ParseToggle(s string) (bool, error) {
	switch normalize(s) {
	case "ON":
		return true, nil
	case "OFF":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected ON or OFF, got %q", ErrInvalidInput, s)
	}
}

// isQuit reports whether the player asked to leave the game.
func isQuit(s string) bool {
	switch normalize(s) {
	case "QUIT", "EXIT":
		return true
	}
	return false
}
