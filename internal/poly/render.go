package poly

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Render sorts the stored terms by descending exponent and returns the
// canonical text form. The new order is kept.
func (p *Polynomial) Render() string {
	if p.n == 0 {
		return "0"
	}
	p.Normalize()
	return format(p.terms[:p.n])
}

// String returns the canonical form without reordering the stored terms.
func (p *Polynomial) String() string {
	terms := slices.Clone(p.terms[:p.n])
	sortDescending(terms)
	return format(terms)
}

// format expects terms already in descending-exponent order.
func format(terms []Term) string {
	var b strings.Builder
	first := true
	for _, t := range terms {
		c, e := t.coef, t.exp
		if c == 0 {
			continue
		}

		if !first {
			if c > 0 {
				b.WriteString(" + ")
			} else {
				b.WriteString(" - ")
			}
		} else if c < 0 {
			b.WriteByte('-')
		}

		abs := math.Abs(c)
		if abs != 1 || e == 0 {
			b.WriteString(formatFloat(abs))
		}

		switch {
		case e == 1:
			b.WriteByte('x')
		case e > 1, e < 0:
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(e))
		}

		first = false
	}
	if first {
		return "0"
	}
	return b.String()
}
