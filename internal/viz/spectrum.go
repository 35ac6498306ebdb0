package viz

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/polyterm/internal/poly"
)

// MaxSpectrumSpan bounds the number of exponent slots a chart may cover.
const MaxSpectrumSpan = 4096

var (
	ErrNothingToPlot = errors.New("viz: no finite coefficients to plot")
	ErrSpanTooWide   = errors.New("viz: exponent range too wide to plot")
)

// Coefficients lays the terms of p out on one slot per exponent between the
// smallest and largest exponent. Terms sharing an exponent are summed for the
// chart only; the polynomial is not modified. Empty slots hold 0 and
// non-finite coefficients become gaps (NaN).
func Coefficients(p *poly.Polynomial) (values []float64, minExp int, err error) {
	terms := p.Terms()
	if len(terms) == 0 {
		return nil, 0, ErrNothingToPlot
	}

	minExp, maxExp := terms[0].Exponent(), terms[0].Exponent()
	for _, t := range terms[1:] {
		minExp = min(minExp, t.Exponent())
		maxExp = max(maxExp, t.Exponent())
	}
	// unsigned so that MinInt..MaxInt does not wrap
	width := uint64(maxExp) - uint64(minExp)
	if width >= MaxSpectrumSpan {
		return nil, 0, fmt.Errorf("%w: %d..%d", ErrSpanTooWide, minExp, maxExp)
	}

	values = make([]float64, width+1)
	finite := false
	for _, t := range terms {
		i := t.Exponent() - minExp
		c := t.Coefficient()
		if math.IsNaN(c) || math.IsInf(c, 0) {
			values[i] = math.NaN()
			continue
		}
		if !math.IsNaN(values[i]) {
			values[i] += c
		}
		finite = true
	}
	if !finite {
		return nil, 0, ErrNothingToPlot
	}
	return values, minExp, nil
}

// Spectrum plots the coefficient of each exponent slot.
func Spectrum(p *poly.Polynomial, height, width int) (string, error) {
	values, minExp, err := Coefficients(p)
	if err != nil {
		return "", err
	}
	maxExp := minExp + len(values) - 1
	caption := fmt.Sprintf("coefficient by exponent (%d..%d)", minExp, maxExp)
	if len(values) == 1 {
		values = append(values, values[0])
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	), nil
}
