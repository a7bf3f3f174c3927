// Package category defines the comparable statistics a round can ask about
// and the selector that picks among the enabled ones.
package category

import (
	"fmt"
	"strings"

	"github.com/papapumpkin/perihelion/internal/body"
)

// Category is one comparable statistic of a body.
type Category int

// Categories in menu order.
const (
	SemimajorAxis Category = iota
	Eccentricity
	Mass
	Gravity
	Radius

	count = Radius + 1
)

// All lists every category in menu order.
var All = []Category{SemimajorAxis, Eccentricity, Mass, Gravity, Radius}

type descriptor struct {
	label string
	unit  string
	value func(body.Body) float64
}

// descriptors is the dispatch table from category to label, unit and accessor.
var descriptors = [count]descriptor{
	SemimajorAxis: {"Semimajor Axis", "km", body.Body.SemimajorAxis},
	Eccentricity:  {"Eccentricity", "", body.Body.Eccentricity},
	Mass:          {"Mass", "", func(b body.Body) float64 { return b.Mass().Float() }},
	Gravity:       {"Gravity", "m/s/s", body.Body.Gravity},
	Radius:        {"Radius", "km", body.Body.MeanRadius},
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	return c >= SemimajorAxis && c <= Radius
}

// String returns the display label, e.g. "Semimajor Axis".
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return descriptors[c].label
}

// Unit returns the display unit. Mass and Eccentricity have none; mass is
// shown in scientific notation.
func (c Category) Unit() string {
	if !c.Valid() {
		return ""
	}
	return descriptors[c].unit
}

// Value returns b's statistic for c. Mass is converted to kilograms.
func (c Category) Value(b body.Body) float64 {
	if !c.Valid() {
		return 0
	}
	return descriptors[c].value(b)
}

// Key returns the config key for c, e.g. "semimajor_axis".
func (c Category) Key() string {
	return strings.ReplaceAll(strings.ToLower(c.String()), " ", "_")
}

// Parse resolves a label or config key, case-insensitively.
func Parse(s string) (Category, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	norm = strings.ReplaceAll(norm, "-", "_")
	for _, c := range All {
		if c.Key() == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
