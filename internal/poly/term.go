package poly

import (
	"fmt"
	"math"
	"strconv"
)

// Term is one coefficient/exponent pair. The zero value is the term 0x^0.
type Term struct {
	coef float64
	exp  int
}

// NewTerm builds a term. Neither field is validated.
func NewTerm(coefficient float64, exponent int) Term {
	return Term{coef: coefficient, exp: exponent}
}

func (t Term) Coefficient() float64 { return t.coef }
func (t Term) Exponent() int        { return t.exp }

// String returns the raw "<coefficient>x^<exponent>" form.
func (t Term) String() string {
	return formatFloat(t.coef) + "x^" + strconv.Itoa(t.exp)
}

// ParseTerm reads a term from the start of "<coefficient> <exponent>".
// Anything after the exponent is ignored.
func ParseTerm(text string) (Term, error) {
	var t Term
	if _, err := fmt.Sscan(text, &t); err != nil {
		return Term{}, err
	}
	return t, nil
}

// Scan implements fmt.Scanner. It reads a coefficient and then an exponent,
// each as the longest numeric prefix available; the term is left untouched if
// either read fails.
func (t *Term) Scan(state fmt.ScanState, _ rune) error {
	term, err := scanPair(state)
	if err != nil {
		return err
	}
	*t = term
	return nil
}

func malformed(what, text string) error {
	if text == "" {
		return fmt.Errorf("%w: missing %s", ErrMalformedTerm, what)
	}
	return fmt.Errorf("%w: %s %q", ErrMalformedTerm, what, text)
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
