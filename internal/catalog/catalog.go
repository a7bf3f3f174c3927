// Package catalog holds the bodies available for play. It behaves like a bag:
// drawing removes a body and the caller returns it once the round is over.
package catalog

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/category"
)

// MaxRedraws bounds how many times Draw re-draws after a zero-valued body.
const MaxRedraws = 1000

// Catalog is a pool of bodies with random removal.
type Catalog struct {
	pool []body.Body
	rng  *rand.Rand
}

// New builds a catalog from normalized bodies. It fails with ErrEmptyCatalog
// when bodies is empty.
func New(bodies []body.Body, rng *rand.Rand) (*Catalog, error) {
	if len(bodies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{pool: slices.Clone(bodies), rng: rng}, nil
}

// Len returns the number of bodies currently in the pool.
func (c *Catalog) Len() int {
	return len(c.pool)
}

// Bodies returns a copy of the pool sorted by name.
func (c *Catalog) Bodies() []body.Body {
	out := slices.Clone(c.pool)
	slices.SortStableFunc(out, func(a, b body.Body) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

// Return puts a body back into the pool.
func (c *Catalog) Return(b body.Body) {
	c.pool = append(c.pool, b)
}

// Draw removes and returns a random body whose value for cat is non-zero.
// Zero-valued draws go back into the pool and another body is drawn, up to
// MaxRedraws times, after which Draw fails with ErrExhaustedPool.
func (c *Catalog) Draw(cat category.Category) (body.Body, error) {
	if len(c.pool) == 0 {
		return body.Body{}, fmt.Errorf("%w: pool is empty", ErrExhaustedPool)
	}
	b := c.take()
	for redraws := 0; cat.Value(b) == 0; redraws++ {
		c.Return(b)
		if redraws == MaxRedraws {
			return body.Body{}, fmt.Errorf("%w: no non-zero %s after %d draws", ErrExhaustedPool, cat, MaxRedraws)
		}
		b = c.take()
	}
	return b, nil
}

// take swap-removes a random element of the pool.
func (c *Catalog) take() body.Body {
	i := c.rng.Intn(len(c.pool))
	b := c.pool[i]
	last := len(c.pool) - 1
	c.pool[i] = c.pool[last]
	c.pool = c.pool[:last]
	return b
}

// Count reports how many pooled bodies have a non-zero value for cat.
func (c *Catalog) Count(cat category.Category) int {
	return lo.CountBy(c.pool, func(b body.Body) bool { return cat.Value(b) != 0 })
}
