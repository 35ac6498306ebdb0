package poly

import (
	"cmp"
	"math"
	"slices"
)

// DefaultCapacity is the initial term capacity used by NewDefault.
const DefaultCapacity = 4

// Polynomial owns a growable buffer of terms. len(terms) is the physical
// capacity; n is the number of terms in use.
type Polynomial struct {
	terms  []Term
	n      int
	sorted bool
}

// New returns an empty polynomial able to hold capacity terms before growing.
func New(capacity int) (*Polynomial, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Polynomial{terms: make([]Term, capacity)}, nil
}

// NewDefault returns an empty polynomial with DefaultCapacity.
func NewDefault() *Polynomial {
	return &Polynomial{terms: make([]Term, DefaultCapacity)}
}

func (p *Polynomial) Len() int      { return p.n }
func (p *Polynomial) Capacity() int { return len(p.terms) }

// Sorted reports whether the stored terms are in descending-exponent order
// because of a Normalize or Render call.
func (p *Polynomial) Sorted() bool { return p.sorted }

// Terms returns a copy of the terms in use, in stored order.
func (p *Polynomial) Terms() []Term {
	return slices.Clone(p.terms[:p.n])
}

// AddTerm appends a term, doubling the capacity first if the buffer is full.
func (p *Polynomial) AddTerm(coefficient float64, exponent int) {
	if p.n >= len(p.terms) {
		p.grow()
	}
	p.terms[p.n] = NewTerm(coefficient, exponent)
	p.n++
	p.sorted = false
}

// Reset drops every term and keeps the capacity.
func (p *Polynomial) Reset() {
	clear(p.terms[:p.n])
	p.n = 0
	p.sorted = false
}

// Normalize sorts the stored terms by descending exponent. Order among equal
// exponents is unspecified.
func (p *Polynomial) Normalize() {
	sortDescending(p.terms[:p.n])
	p.sorted = true
}

func (p *Polynomial) grow() {
	capacity := len(p.terms)
	if capacity == 0 {
		capacity = DefaultCapacity
	} else {
		if capacity > math.MaxInt/2 {
			panic(ErrCapacityOverflow)
		}
		capacity *= 2
	}
	next := make([]Term, capacity)
	copy(next, p.terms[:p.n])
	p.terms = next
}

func sortDescending(terms []Term) {
	slices.SortFunc(terms, func(a, b Term) int {
		return cmp.Compare(b.exp, a.exp)
	})
}
