package category

import (
	"math/rand"

	"github.com/samber/lo"
)

// Settings records which categories are enabled. The zero value enables
// nothing and fails Validate.
type Settings [count]bool

// DefaultSettings enables every category.
func DefaultSettings() Settings {
	var s Settings
	for _, c := range All {
		s[c] = true
	}
	return s
}

// ParseSettings enables exactly the named categories.
func ParseSettings(names []string) (Settings, error) {
	var s Settings
	for _, n := range names {
		c, err := Parse(n)
		if err != nil {
			return Settings{}, err
		}
		s[c] = true
	}
	return s, nil
}

// With returns a copy of s with c switched on or off.
func (s Settings) With(c Category, on bool) Settings {
	if c.Valid() {
		s[c] = on
	}
	return s
}

// IsEnabled reports whether c is switched on.
func (s Settings) IsEnabled(c Category) bool {
	return c.Valid() && s[c]
}

// Enabled returns the enabled categories in menu order.
func (s Settings) Enabled() []Category {
	return lo.Filter(All, func(c Category, _ int) bool { return s[c] })
}

// Single reports whether exactly one category is enabled.
func (s Settings) Single() bool {
	return len(s.Enabled()) == 1
}

// Validate returns ErrInvalidConfiguration when nothing is enabled.
func (s Settings) Validate() error {
	if len(s.Enabled()) == 0 {
		return ErrInvalidConfiguration
	}
	return nil
}

// Selector is a bag of enabled categories. A game draws a category with Next
// and puts it back with Release once the round using it is over, so the same
// category cannot be drawn twice in a row while another one is available.
type Selector struct {
	settings Settings
	bag      []Category
	rng      *rand.Rand
}

// NewSelector fills a bag with every enabled category.
func NewSelector(s Settings, rng *rand.Rand) (*Selector, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Selector{settings: s, bag: s.Enabled(), rng: rng}, nil
}

// Next removes and returns a random category from the bag.
func (s *Selector) Next() (Category, error) {
	if len(s.bag) == 0 {
		return 0, ErrExhaustedCategories
	}
	i := s.rng.Intn(len(s.bag))
	c := s.bag[i]
	last := len(s.bag) - 1
	s.bag[i] = s.bag[last]
	s.bag = s.bag[:last]
	return c, nil
}

// Release puts a used category back into the bag.
func (s *Selector) Release(c Category) {
	s.bag = append(s.bag, c)
}

// Single reports whether the game runs in single-category mode.
func (s *Selector) Single() bool {
	return s.settings.Single()
}

// Len returns the number of categories currently in the bag.
func (s *Selector) Len() int {
	return len(s.bag)
}
