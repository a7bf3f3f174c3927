// Package body turns raw Solar System records into validated, immutable game
// entities. A Body only exists if every comparable statistic was present in
// its source record.
package body

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the body type reported by the data source.
type Kind string

// Known body kinds.
const (
	KindStar        Kind = "Star"
	KindPlanet      Kind = "Planet"
	KindDwarfPlanet Kind = "Dwarf Planet"
	KindAsteroid    Kind = "Asteroid"
	KindComet       Kind = "Comet"
	KindMoon        Kind = "Moon"
)

// Mass is a mass in kilograms expressed as Mantissa x 10^Exponent. After
// normalization the mantissa lies in [1, 10).
type Mass struct {
	Mantissa float64
	Exponent int
}

// Float returns the mass as a plain float64 in kilograms.
func (m Mass) Float() float64 {
	return m.Mantissa * math.Pow10(m.Exponent)
}

// String renders the mass as "<mantissa> x 10^<exponent>".
func (m Mass) String() string {
	return strconv.FormatFloat(m.Mantissa, 'f', -1, 64) + " x 10^" + strconv.Itoa(m.Exponent)
}

// ParseMass parses the output of Mass.String back into a Mass.
func ParseMass(s string) (Mass, error) {
	mant, exp, ok := strings.Cut(s, " x 10^")
	if !ok {
		return Mass{}, &strconv.NumError{Func: "ParseMass", Num: s, Err: strconv.ErrSyntax}
	}
	m, err := strconv.ParseFloat(mant, 64)
	if err != nil {
		return Mass{}, err
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return Mass{}, err
	}
	return Mass{Mantissa: m, Exponent: e}, nil
}

// Body is a validated Solar System object. Its fields are fixed at
// construction; use the accessors to read them.
type Body struct {
	name          string
	kind          Kind
	semimajorAxis float64
	eccentricity  float64
	gravity       float64
	meanRadius    float64
	mass          Mass
}

// Stats holds the comparable statistics of a body.
type Stats struct {
	SemimajorAxis float64
	Eccentricity  float64
	Gravity       float64
	MeanRadius    float64
	Mass          Mass
}

// New builds a Body from already validated values. Normalize is the usual
// way to obtain one from source data.
func New(name string, kind Kind, s Stats) Body {
	return Body{
		name:          name,
		kind:          kind,
		semimajorAxis: s.SemimajorAxis,
		eccentricity:  s.Eccentricity,
		gravity:       s.Gravity,
		meanRadius:    s.MeanRadius,
		mass:          s.Mass,
	}
}

// Name returns the cleaned English name.
func (b Body) Name() string { return b.name }

// Kind returns the body type.
func (b Body) Kind() Kind { return b.kind }

// SemimajorAxis returns the orbital semimajor axis in km.
func (b Body) SemimajorAxis() float64 { return b.semimajorAxis }

// Eccentricity returns the orbital eccentricity.
func (b Body) Eccentricity() float64 { return b.eccentricity }

// Gravity returns the surface gravity in m/s².
func (b Body) Gravity() float64 { return b.gravity }

// MeanRadius returns the mean radius in km.
func (b Body) MeanRadius() float64 { return b.meanRadius }

// Mass returns the canonical scientific-notation mass.
func (b Body) Mass() Mass { return b.mass }

// MassDisplay returns the rendered mass, e.g. "5.97 x 10^24".
func (b Body) MassDisplay() string { return b.mass.String() }
