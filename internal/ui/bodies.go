package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/category"
)

// BodyTable renders every statistic of every body, one row per body.
func BodyTable(bodies []body.Body) string {
	headers := []string{"Name", "Type"}
	for _, c := range category.All {
		headers = append(headers, c.String())
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	for _, b := range bodies {
		row := []string{b.Name(), string(b.Kind())}
		for _, c := range category.All {
			row = append(row, FormatValue(b, c))
		}
		t.Row(row...)
	}
	return t.String()
}

// Bodies prints the reveal-mode listing of the catalog.
func (p *Printer) Bodies(bodies []body.Body) {
	fmt.Fprintln(p.w, BodyTable(bodies))
	fmt.Fprintln(p.w, p.st.dim.Render(fmt.Sprintf("%s bodies", humanize.Comma(int64(len(bodies))))))
}

// LoadSummary reports how many records became playable bodies.
func (p *Printer) LoadSummary(name string, total, skipped int) {
	fmt.Fprintf(p.w, "%s %s records from %s, %s skipped as incomplete\n",
		p.st.good.Render("✓ loaded"),
		humanize.Comma(int64(total)),
		name,
		humanize.Comma(int64(skipped)),
	)
}

// CategoryCounts reports, per category, how many bodies can be drawn for it.
func (p *Printer) CategoryCounts(total int, counts map[category.Category]int) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Category", "Usable", "Share")
	for _, c := range category.All {
		n := counts[c]
		share := "0%"
		if total > 0 {
			share = humanize.FtoaWithDigits(100*float64(n)/float64(total), 1) + "%"
		}
		t.Row(c.String(), humanize.Comma(int64(n)), share)
	}
	fmt.Fprintln(p.w, t.String())
	for _, c := range category.All {
		if counts[c] == 0 {
			p.Warn(fmt.Sprintf("no body has a non-zero %s; rounds using it cannot be dealt", c))
		}
	}
}
