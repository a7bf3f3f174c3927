package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/category"
	"github.com/papapumpkin/perihelion/internal/game"
)

// Article returns "an" for words starting with a vowel and "a" otherwise.
func Article(word string) string {
	if word != "" && strings.ContainsRune("aeiouAEIOU", rune(word[0])) {
		return "an"
	}
	return "a"
}

// FormatValue renders b's value for c with thousands separators, or in
// scientific notation for mass.
func FormatValue(b body.Body, c category.Category) string {
	if c == category.Mass {
		return b.MassDisplay()
	}
	return humanize.Commaf(c.Value(b))
}

// Measure renders "<value> <unit>", dropping the unit when there is none.
func Measure(b body.Body, c category.Category) string {
	if u := c.Unit(); u != "" {
		return FormatValue(b, c) + " " + u
	}
	return FormatValue(b, c)
}

// Fact describes one body's value, e.g.
// "The Planet Earth has a gravity of 9.8 m/s/s."
func Fact(b body.Body, c category.Category) string {
	label := strings.ToLower(c.String())
	return fmt.Sprintf("The %s %s has %s %s of %s.", b.Kind(), b.Name(), Article(label), label, Measure(b, c))
}

// Question asks about the right body relative to the left one.
func Question(left, right body.Body, c category.Category) string {
	return fmt.Sprintf("The %s %s has a [HIGHER/LOWER] %s than %s.",
		right.Kind(), right.Name(), strings.ToLower(c.String()), left.Name())
}

// RoundStarted prints the round's fact and question.
func (p *Printer) RoundStarted(r game.Round) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.st.label.Render(fmt.Sprintf("Round %d · %s", r.Number, r.Category)))
	fmt.Fprintln(p.w, Fact(r.Left, r.Category))
	fmt.Fprintln(p.w, Question(r.Left, r.Right, r.Category))
	if p.reveal {
		label := strings.ToLower(r.Category.String())
		fmt.Fprintln(p.w, p.st.warn.Render("\t!!! REVEAL MODE !!!"))
		fmt.Fprintf(p.w, "\t\tRight body has %s %s of %s.\n", Article(label), label, Measure(r.Right, r.Category))
	}
	fmt.Fprintln(p.w, "Please type in your answer.")
}

// RoundJudged prints the correct-answer banner.
func (p *Printer) RoundJudged(o game.Outcome) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.st.good.Render(strings.Repeat("!", 25)))
	fmt.Fprintln(p.w, p.st.good.Render(strings.Repeat(" ", 8)+"CORRECT"))
	if o.Verdict.FreePoint {
		fmt.Fprintln(p.w, p.st.warn.Render("FREE POINT!!!")+" Both values are equal.")
	}
	fmt.Fprintln(p.w, p.st.dim.Render(fmt.Sprintf("score: %d", o.Score)))
}

// GameOver prints the score report, revealing the value the player missed.
func (p *Printer) GameOver(o game.Outcome) {
	r := o.Round
	label := strings.ToLower(r.Category.String())
	fmt.Fprintln(p.w, p.st.bad.Render(strings.Repeat("#", 39)))
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.st.bad.Render("Oh no! That is unfortunately incorrect!"))
	fmt.Fprintf(p.w, "%s has %s %s of %s.\n", r.Right.Name(), Article(label), label, Measure(r.Right, r.Category))
	fmt.Fprintf(p.w, "Your final score is %s.\n", p.st.value.Render(fmt.Sprint(o.Score)))
	fmt.Fprintln(p.w, "Thank you for playing!")
}
