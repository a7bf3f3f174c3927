package body

import (
	"errors"
	"math"
	"testing"
)

func ptr[T any](v T) *T { return &v }

// earth returns a complete raw record; tests knock fields out of it.
func earth() RawBody {
	return RawBody{
		EnglishName:   ptr("Earth"),
		SemimajorAxis: ptr(149598023.0),
		Eccentricity:  ptr(0.0167),
		Mass:          &RawMass{MassValue: ptr(5.97), MassExponent: ptr(24)},
		Gravity:       ptr(9.8),
		MeanRadius:    ptr(6371.0),
		BodyType:      ptr("Planet"),
	}
}

func TestNormalize_Earth(t *testing.T) {
	t.Parallel()

	b, err := NewNormalizer().Normalize(earth())
	if err != nil {
		t.Fatalf("Normalize(earth) returned error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Name", b.Name(), "Earth"},
		{"Kind", b.Kind(), KindPlanet},
		{"SemimajorAxis", b.SemimajorAxis(), 149598023.0},
		{"Eccentricity", b.Eccentricity(), 0.0167},
		{"Gravity", b.Gravity(), 9.8},
		{"MeanRadius", b.MeanRadius(), 6371.0},
		{"Mantissa", b.Mass().Mantissa, 5.97},
		{"Exponent", b.Mass().Exponent, 24},
		{"MassDisplay", b.MassDisplay(), "5.97 x 10^24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestNormalize_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		strip func(*RawBody)
	}{
		{"no name", "englishName", func(r *RawBody) { r.EnglishName = nil }},
		{"no axis", "semimajorAxis", func(r *RawBody) { r.SemimajorAxis = nil }},
		{"no eccentricity", "eccentricity", func(r *RawBody) { r.Eccentricity = nil }},
		{"no mass", "mass", func(r *RawBody) { r.Mass = nil }},
		{"no mass value", "massValue", func(r *RawBody) { r.Mass.MassValue = nil }},
		{"no mass exponent", "massExponent", func(r *RawBody) { r.Mass.MassExponent = nil }},
		{"no gravity", "gravity", func(r *RawBody) { r.Gravity = nil }},
		{"no radius", "meanRadius", func(r *RawBody) { r.MeanRadius = nil }},
		{"no body type", "bodyType", func(r *RawBody) { r.BodyType = nil }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := earth()
			tt.strip(&raw)

			_, err := NewNormalizer().Normalize(raw)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("expected ErrMalformedRecord, got %v", err)
			}
			var mre *MalformedRecordError
			if !errors.As(err, &mre) {
				t.Fatalf("expected *MalformedRecordError, got %T", err)
			}
			if mre.Field != tt.field {
				t.Errorf("Field = %q, want %q", mre.Field, tt.field)
			}
		})
	}
}

func TestNormalize_ZeroValuesArePresent(t *testing.T) {
	t.Parallel()

	raw := earth()
	raw.Eccentricity = ptr(0.0)
	raw.Gravity = ptr(0.0)

	b, err := NewNormalizer().Normalize(raw)
	if err != nil {
		t.Fatalf("zero-valued fields must not be treated as missing: %v", err)
	}
	if b.Gravity() != 0 || b.Eccentricity() != 0 {
		t.Errorf("expected zero gravity and eccentricity, got %v and %v", b.Gravity(), b.Eccentricity())
	}
}

func TestNormalize_UnresolvedDesignation(t *testing.T) {
	t.Parallel()

	raw := earth()
	raw.EnglishName = ptr("S/2004 S 12")

	_, err := NewNormalizer().Normalize(raw)
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord for provisional designation, got %v", err)
	}
}

func TestNormalize_NonPositiveMass(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{0, -3.2} {
		raw := earth()
		raw.Mass.MassValue = ptr(v)
		if _, err := NewNormalizer().Normalize(raw); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("massValue %v: expected ErrMalformedRecord, got %v", v, err)
		}
	}
}

func TestCleanName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Earth", "Earth"},
		{"1 Ceres", "Ceres"},
		{"136199 Eris", "Eris"},
		{"  42 355 Typhon", "Typhon"},
		{"Io 2", "Io 2"},
	}
	for _, tt := range tests {
		if got := cleanName(tt.in); got != tt.want {
			t.Errorf("cleanName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeMass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    float64
		exponent int
		want     Mass
	}{
		{"in range untouched", 5.97, 24, Mass{5.97, 24}},
		{"in range keeps precision", 1.98854, 30, Mass{1.98854, 30}},
		{"above range", 15.0, 3, Mass{1.5, 4}},
		{"far above range", 1234.5678, 10, Mass{1.235, 13}},
		{"exactly ten", 10, 2, Mass{1, 3}},
		{"below range", 0.5, 20, Mass{5, 19}},
		{"far below range", 0.000123, 20, Mass{1.23, 16}},
		{"rounds up to ten", 99.996, 1, Mass{1, 3}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := NormalizeMass(tt.value, tt.exponent)
			if !ok {
				t.Fatalf("NormalizeMass(%v, %d) reported failure", tt.value, tt.exponent)
			}
			if math.Abs(got.Mantissa-tt.want.Mantissa) > 1e-9 || got.Exponent != tt.want.Exponent {
				t.Errorf("NormalizeMass(%v, %d) = %v, want %v", tt.value, tt.exponent, got, tt.want)
			}
		})
	}
}

func TestNormalizeMass_CanonicalRange(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{1e-9, 0.0999, 0.9999, 1, 9.99, 9.9999, 10, 11, 99.999, 3.3e7} {
		m, ok := NormalizeMass(v, 0)
		if !ok {
			t.Fatalf("NormalizeMass(%v) reported failure", v)
		}
		if m.Mantissa < 1 || m.Mantissa >= 10 {
			t.Errorf("NormalizeMass(%v) mantissa %v outside [1, 10)", v, m.Mantissa)
		}
	}
}

func TestMassDisplayRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []Mass{{5.97, 24}, {1.5, 4}, {1.98854, 30}, {7.346, 22}, {1, -3}} {
		got, err := ParseMass(m.String())
		if err != nil {
			t.Fatalf("ParseMass(%q): %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMass(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestParseMass_Invalid(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "5.97", "x x 10^3", "5.97 x 10^y"} {
		if _, err := ParseMass(s); err == nil {
			t.Errorf("ParseMass(%q) expected error", s)
		}
	}
}

func TestNormalizeAll(t *testing.T) {
	t.Parallel()

	good := earth()
	bad := earth()
	bad.Gravity = nil
	ceres := earth()
	ceres.EnglishName = ptr("1 Ceres")
	ceres.BodyType = ptr("Dwarf Planet")

	bodies, skipped := NewNormalizer().NormalizeAll([]RawBody{good, bad, ceres})
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(bodies) != 2 {
		t.Fatalf("len(bodies) = %d, want 2", len(bodies))
	}
	if bodies[1].Name() != "Ceres" || bodies[1].Kind() != KindDwarfPlanet {
		t.Errorf("second body = %q (%s), want Ceres (Dwarf Planet)", bodies[1].Name(), bodies[1].Kind())
	}
}
