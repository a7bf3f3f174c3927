package catalog

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/category"
)

func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

func mk(name string, gravity, radius float64) body.Body {
	return body.New(name, body.KindMoon, body.Stats{
		SemimajorAxis: 1000,
		Eccentricity:  0.01,
		Gravity:       gravity,
		MeanRadius:    radius,
		Mass:          body.Mass{Mantissa: 1, Exponent: 20},
	})
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, newRand()); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("New(nil) error = %v, want ErrEmptyCatalog", err)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []body.Body{mk("A", 1, 1), mk("B", 1, 1)}
	c, err := New(in, newRand())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Draw(category.Gravity); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if in[0].Name() != "A" || in[1].Name() != "B" {
		t.Error("Draw must not reorder the caller's slice")
	}
}

func TestDraw_RemovesAndReturn(t *testing.T) {
	t.Parallel()

	c, err := New([]body.Body{mk("A", 1, 1), mk("B", 2, 2), mk("C", 3, 3)}, newRand())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	drawn := map[string]bool{}
	for i := 0; i < 3; i++ {
		b, err := c.Draw(category.Gravity)
		if err != nil {
			t.Fatalf("Draw #%d: %v", i, err)
		}
		if drawn[b.Name()] {
			t.Errorf("body %s drawn twice without being returned", b.Name())
		}
		drawn[b.Name()] = true
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d after drawing everything, want 0", c.Len())
	}
	if _, err := c.Draw(category.Gravity); !errors.Is(err, ErrExhaustedPool) {
		t.Errorf("Draw on empty pool: err = %v, want ErrExhaustedPool", err)
	}

	c.Return(mk("A", 1, 1))
	if c.Len() != 1 {
		t.Errorf("Len after Return = %d, want 1", c.Len())
	}
}

func TestDraw_NeverReturnsZeroValue(t *testing.T) {
	t.Parallel()

	bodies := []body.Body{mk("Zero1", 0, 5), mk("Zero2", 0, 5), mk("Zero3", 0, 5), mk("Real", 9.8, 5)}
	for seed := int64(0); seed < 50; seed++ {
		c, err := New(bodies, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		b, err := c.Draw(category.Gravity)
		if err != nil {
			t.Fatalf("seed %d: Draw: %v", seed, err)
		}
		if b.Name() != "Real" {
			t.Fatalf("seed %d: drew %s with zero gravity", seed, b.Name())
		}
		if c.Len() != 3 {
			t.Fatalf("seed %d: rejected bodies must be re-inserted, Len = %d", seed, c.Len())
		}
	}
}

func TestDraw_ExhaustedOnDegenerateData(t *testing.T) {
	t.Parallel()

	c, err := New([]body.Body{mk("Zero1", 0, 5), mk("Zero2", 0, 5)}, newRand())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.Draw(category.Gravity)
	if !errors.Is(err, ErrExhaustedPool) {
		t.Fatalf("Draw error = %v, want ErrExhaustedPool", err)
	}
	if c.Len() != 2 {
		t.Errorf("failed Draw must leave the pool intact, Len = %d", c.Len())
	}

	// A different category still works on the same pool.
	if _, err := c.Draw(category.Radius); err != nil {
		t.Errorf("Draw(Radius): %v", err)
	}
}

func TestBodies_SortedCopy(t *testing.T) {
	t.Parallel()

	c, err := New([]body.Body{mk("Titan", 1, 1), mk("Ariel", 1, 1), mk("Moon", 1, 1)}, newRand())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := c.Bodies()
	want := []string{"Ariel", "Moon", "Titan"}
	for i, b := range got {
		if b.Name() != want[i] {
			t.Errorf("Bodies()[%d] = %s, want %s", i, b.Name(), want[i])
		}
	}
	if c.Len() != 3 {
		t.Error("Bodies must not drain the pool")
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	c, err := New([]body.Body{mk("A", 0, 1), mk("B", 2, 0), mk("C", 3, 3)}, newRand())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Count(category.Gravity); got != 2 {
		t.Errorf("Count(Gravity) = %d, want 2", got)
	}
	if got := c.Count(category.Radius); got != 2 {
		t.Errorf("Count(Radius) = %d, want 2", got)
	}
	if got := c.Count(category.Mass); got != 3 {
		t.Errorf("Count(Mass) = %d, want 3", got)
	}
}
