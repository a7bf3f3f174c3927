// Package console plays the game on a line-oriented terminal. It owns the
// pregame menu, the settings editor and the guess prompt, re-prompting until
// the player types something valid.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/papapumpkin/perihelion/internal/category"
	"github.com/papapumpkin/perihelion/internal/game"
	"github.com/papapumpkin/perihelion/internal/judge"
	"github.com/papapumpkin/perihelion/internal/ui"
)

// ErrInputClosed is returned when the input reaches EOF mid-prompt.
var ErrInputClosed = errors.New("input closed")

type line struct {
	text string
	err  error
}

// Console reads answers from in and writes prompts through a ui.Printer.
type Console struct {
	in      io.Reader
	printer *ui.Printer

	start sync.Once
	lines chan line
}

// New returns a Console on stdin.
func New(p *ui.Printer) *Console {
	return NewWithIO(os.Stdin, p)
}

// NewWithIO returns a Console with injectable input for testing.
func NewWithIO(in io.Reader, p *ui.Printer) *Console {
	return &Console{in: in, printer: p, lines: make(chan line)}
}

// scan feeds lines from the input into c.lines until EOF or a read error.
// A single goroutine owns the scanner so no buffered input is lost between
// prompts, and a canceled prompt leaves the next line for the next prompt.
func (c *Console) scan() {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.lines <- line{text: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = ErrInputClosed
	} else {
		err = fmt.Errorf("reading input: %w", err)
	}
	for {
		c.lines <- line{err: err}
	}
}

// readLine blocks until a line is typed or ctx is canceled.
func (c *Console) readLine(ctx context.Context) (string, error) {
	c.start.Do(func() { go c.scan() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-c.lines:
		return l.text, l.err
	}
}

// ask prints prompt and reads lines until parse accepts one, printing retry
// after every rejected line.
func ask[T any](ctx context.Context, c *Console, prompt, retry string, parse func(string) (T, error)) (T, error) {
	c.printer.Prompt(prompt)
	for {
		text, err := c.readLine(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(text)
		if err == nil {
			return v, nil
		}
		c.printer.Retry(retry)
		c.printer.Prompt("")
	}
}

// Guess implements game.Player. Typing QUIT or closing the input abandons
// the game.
func (c *Console) Guess(ctx context.Context, _ game.Round) (judge.Guess, error) {
	g, err := ask(ctx, c, "", `Please indicate a valid answer ["HIGHER"/"LOWER"].`, func(s string) (judge.Guess, error) {
		if isQuit(s) {
			return 0, nil
		}
		return judge.ParseGuess(s)
	})
	if errors.Is(err, ErrInputClosed) || (err == nil && g == 0) {
		return 0, game.ErrQuit
	}
	return g, err
}

// ConfirmChange asks whether the player wants to edit the settings.
func (c *Console) ConfirmChange(ctx context.Context) (bool, error) {
	return ask(ctx, c, "Would you like to change the settings ['Y'/'N']?", "Please input a valid response ['Y'/'N'].", ParseYesNo)
}

// PlayAgain asks whether to start another game.
func (c *Console) PlayAgain(ctx context.Context) (bool, error) {
	return ask(ctx, c, "Play again ['Y'/'N']?", "Please input a valid response ['Y'/'N'].", ParseYesNo)
}

// EditSettings asks ON/OFF for every category and starts over until at
// least one category is enabled.
func (c *Console) EditSettings(ctx context.Context) (category.Settings, error) {
	for {
		var s category.Settings
		for _, cat := range category.All {
			on, err := ask(ctx, c,
				fmt.Sprintf(`Would you like to turn the %s category on or off ["ON"/"OFF"]?`, cat),
				fmt.Sprintf(`Please indicate a valid setting for %s ["ON"/"OFF"].`, cat),
				ParseToggle,
			)
			if err != nil {
				return category.Settings{}, err
			}
			s = s.With(cat, on)
		}
		if s.Validate() == nil {
			c.printer.Info("Your new settings are...")
			c.printer.Settings(s)
			return s, nil
		}
		c.printer.SettingsRejected()
	}
}

// Pregame shows the instructions and settings, offers to change them, then
// runs the menu until the player picks START. It returns the settings to
// play with.
func (c *Console) Pregame(ctx context.Context, settings category.Settings) (category.Settings, error) {
	c.printer.Instructions()
	c.printer.Info("The game settings have been set to...")
	c.printer.Settings(settings)

	change, err := c.ConfirmChange(ctx)
	if err != nil {
		return settings, err
	}
	if change {
		if settings, err = c.EditSettings(ctx); err != nil {
			return settings, err
		}
	}

	for {
		c.printer.Menu()
		cmd, err := ask(ctx, c, "", "Please supply a valid command.", ParseCommand)
		if err != nil {
			return settings, err
		}
		switch cmd {
		case CommandStart:
			return settings, nil
		case CommandChange:
			if settings, err = c.EditSettings(ctx); err != nil {
				return settings, err
			}
		case CommandViewSettings:
			c.printer.Settings(settings)
		case CommandViewInstructions:
			c.printer.Instructions()
		}
	}
}
