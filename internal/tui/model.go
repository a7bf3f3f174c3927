// Package tui plays the game in a full-screen terminal interface built on
// bubbletea. It drives the same game.Session as the console mode.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/category"
	"github.com/papapumpkin/perihelion/internal/game"
	"github.com/papapumpkin/perihelion/internal/judge"
	"github.com/papapumpkin/perihelion/internal/telemetry"
	"github.com/papapumpkin/perihelion/internal/ui"
)

// LoadFunc fetches the playable bodies.
type LoadFunc func(ctx context.Context) ([]body.Body, error)

// Config wires a Model to its data and collaborators.
type Config struct {
	Load     LoadFunc
	Settings category.Settings
	Rand     *rand.Rand
	Emitter  *telemetry.Emitter
	Logger   *slog.Logger
	Reveal   bool
}

type state int

const (
	stateLoading state = iota
	statePlaying
	stateEnded
	stateError
)

// MsgBodiesLoaded carries the result of a load. Every game reloads.
type MsgBodiesLoaded struct {
	Bodies []body.Body
	Err    error
}

// Model is the root bubbletea model.
type Model struct {
	cfg     Config
	keys    KeyMap
	spinner spinner.Model
	ctx     context.Context

	state   state
	bodies  []body.Body
	session *game.Session
	round   game.Round
	last    *game.Outcome
	best    int
	games   int
	err     error
}

// NewModel creates a model in the loading state.
func NewModel(ctx context.Context, cfg Config) Model {
	if cfg.Rand == nil {
		cfg.Rand = game.NewRand(0)
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleTitle
	return Model{cfg: cfg, keys: DefaultKeyMap(), spinner: s, ctx: ctx}
}

// Init starts the spinner and the load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	load, ctx := m.cfg.Load, m.ctx
	return func() tea.Msg {
		bodies, err := load(ctx)
		return MsgBodiesLoaded{Bodies: bodies, Err: err}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgBodiesLoaded:
		if msg.Err != nil {
			m.fail(msg.Err)
			return m, nil
		}
		m.bodies = msg.Bodies
		m.newGame()
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.state == statePlaying {
			_ = m.session.Quit()
		}
		return m, tea.Quit
	}
	switch m.state {
	case statePlaying:
		switch {
		case key.Matches(msg, m.keys.Higher):
			m.answer(judge.Higher)
		case key.Matches(msg, m.keys.Lower):
			m.answer(judge.Lower)
		}
	case stateEnded:
		if key.Matches(msg, m.keys.Again) {
			m.state = stateLoading
			m.keys = playingKeyMap()
			return m, tea.Batch(m.spinner.Tick, m.loadCmd())
		}
	}
	return m, nil
}

// newGame deals a fresh session from the most recently loaded bodies.
func (m *Model) newGame() {
	cat, err := catalog.New(m.bodies, m.cfg.Rand)
	if err != nil {
		m.fail(err)
		return
	}
	m.session = game.New(cat, game.Options{
		Rand:     m.cfg.Rand,
		Settings: m.cfg.Settings,
		Emitter:  m.cfg.Emitter,
		Logger:   m.cfg.Logger,
	})
	r, err := m.session.Start()
	if err != nil {
		m.fail(err)
		return
	}
	m.round = r
	m.last = nil
	m.games++
	m.state = statePlaying
	m.keys = playingKeyMap()
}

func (m *Model) answer(g judge.Guess) {
	o, err := m.session.Answer(g)
	if err != nil {
		m.fail(err)
		return
	}
	m.last = &o
	if o.Next != nil {
		m.round = *o.Next
		return
	}
	m.best = max(m.best, o.Score)
	m.state = stateEnded
	m.keys = endedKeyMap()
}

func (m *Model) fail(err error) {
	m.err = err
	m.state = stateError
	m.keys = endedKeyMap()
	m.keys.Again.SetEnabled(false)
}

// Score returns the current session's score.
func (m Model) Score() int {
	if m.session == nil {
		return 0
	}
	return m.session.Score()
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error { return m.err }

// View renders the current state.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("PERIHELION · higher or lower"))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString(m.spinner.View() + " loading bodies…")
	case statePlaying:
		b.WriteString(m.viewFeedback())
		b.WriteString(m.viewRound())
	case stateEnded:
		b.WriteString(m.viewGameOver())
	case stateError:
		b.WriteString(styleGameOver.Render("error: ") + m.err.Error())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m Model) viewRound() string {
	r := m.round
	lines := []string{
		styleScore.Render(fmt.Sprintf("Round %d · %s · score %d · best %d", r.Number, r.Category, m.session.Score(), m.best)),
		"",
		ui.Fact(r.Left, r.Category),
		ui.Question(r.Left, r.Right, r.Category),
	}
	if m.cfg.Reveal {
		lines = append(lines, styleReveal.Render("reveal: "+r.Right.Name()+" is "+ui.Measure(r.Right, r.Category)))
	}
	return styleCard.Render(strings.Join(lines, "\n"))
}

func (m Model) viewFeedback() string {
	if m.last == nil {
		return ""
	}
	if m.last.Verdict.FreePoint {
		return styleFreePoint.Render("FREE POINT!!!") + "\n"
	}
	return styleCorrect.Render("CORRECT") + "\n"
}

func (m Model) viewGameOver() string {
	o := m.last
	r := o.Round
	lines := []string{
		styleGameOver.Render("Oh no! That is unfortunately incorrect!"),
		ui.Fact(r.Right, r.Category),
		"",
		styleScore.Render(fmt.Sprintf("Final score %d · best %d · games %d", o.Score, m.best, m.games)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHelp() string {
	parts := make([]string, 0, 4)
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styleHelp.Render(strings.Join(parts, " • "))
}

// Run starts the program on the alternate screen and blocks until the
// player quits. It returns the best score of the run.
func Run(ctx context.Context, cfg Config, opts ...tea.ProgramOption) (int, error) {
	allOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	allOpts = append(allOpts, opts...)

	final, err := tea.NewProgram(NewModel(ctx, cfg), allOpts...).Run()
	if err != nil {
		return 0, fmt.Errorf("TUI error: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return 0, nil
	}
	return m.best, m.err
}
