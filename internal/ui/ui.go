// Package ui prints the console game: banners, instructions, settings, round
// sentences and score reports. Colour is applied through a lipgloss renderer
// bound to the output, so redirected output stays plain text.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/perihelion/internal/category"
)

type styles struct {
	title lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	warn  lipgloss.Style
	dim   lipgloss.Style
	value lipgloss.Style
	label lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		good:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		bad:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		warn:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		dim:   r.NewStyle().Faint(true),
		value: r.NewStyle().Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

// Printer writes player-facing output.
type Printer struct {
	w      io.Writer
	st     styles
	reveal bool
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter returns a Printer writing to w.
func NewWithWriter(w io.Writer) *Printer {
	return &Printer{w: w, st: newStyles(lipgloss.NewRenderer(w))}
}

// SetReveal makes RoundStarted also print the right body's value.
func (p *Printer) SetReveal(on bool) {
	p.reveal = on
}

// Banner prints the title box.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.st.title.Render("  ╔══════════════════════════════════════╗"))
	fmt.Fprintln(p.w, p.st.title.Render("  ║  PERIHELION")+p.st.dim.Render("  higher or lower, in orbit")+p.st.title.Render("  ║"))
	fmt.Fprintln(p.w, p.st.title.Render("  ╚══════════════════════════════════════╝"))
	fmt.Fprintln(p.w)
}

// Instructions explains the rules.
func (p *Printer) Instructions() {
	lines := []string{
		p.st.title.Render("Welcome to Higher or Lower, Solar System edition!"),
		"You are shown one Solar System body along with a single statistic.",
		"Decide whether a second body has a higher or lower value for that statistic.",
		"Type " + p.st.value.Render("HIGHER") + " or " + p.st.value.Render("LOWER") + " (any case) to answer.",
		"A correct guess scores a point. A wrong guess ends the game.",
		"Each round keeps the previous round's second body as the new reference.",
		"With a single category enabled, the statistic never changes.",
		"",
	}
	fmt.Fprintln(p.w, strings.Join(lines, "\n"))
}

// Settings lists every category with its ON/OFF state.
func (p *Printer) Settings(s category.Settings) {
	for _, c := range category.All {
		state := p.st.bad.Render("OFF")
		if s.IsEnabled(c) {
			state = p.st.good.Render("ON")
		}
		fmt.Fprintf(p.w, "%14s:  %s\n", c.String(), state)
	}
}

// SettingsRejected tells the player that at least one category is needed.
func (p *Printer) SettingsRejected() {
	fmt.Fprintln(p.w, p.st.bad.Render("There was an error with your settings.")+" You must have at least one category enabled.")
}

// Menu lists the pregame commands.
func (p *Printer) Menu() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "What would you like to do?")
	for _, cmd := range []string{"START", "CHANGE", "VIEW SETTINGS", "VIEW INSTRUCTIONS"} {
		fmt.Fprintln(p.w, "  ["+p.st.value.Render(cmd)+"]")
	}
}

// Prompt prints an input marker without a newline.
func (p *Printer) Prompt(msg string) {
	if msg != "" {
		fmt.Fprintln(p.w, msg)
	}
	fmt.Fprint(p.w, p.st.title.Render("> "))
}

// Retry asks for the input again after an invalid answer.
func (p *Printer) Retry(msg string) {
	fmt.Fprintln(p.w, "\t"+p.st.warn.Render(msg))
}

// Error prints a failure line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.st.bad.Render("error: ")+msg)
}

// Info prints a dimmed status line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.st.dim.Render(msg))
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.w, p.st.warn.Render("⚠ ")+msg)
}
