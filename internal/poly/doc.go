// Package poly provides a sparse single-variable polynomial container.
//
// A [Polynomial] stores (coefficient, exponent) [Term] values in insertion
// order inside a growable buffer and renders them in canonical form:
//
//   - terms sorted by descending exponent
//   - zero coefficients skipped
//   - sign pulled out of the magnitude (" + " / " - " separators)
//   - unit magnitudes omitted unless the term is the constant
//
// # Example
//
//	p := poly.NewDefault()
//	p.Parse("3 2 -1 1 4 0")
//	fmt.Println(p.Render()) // 3x^2 - x + 4
//
// # Ordering
//
// [Polynomial.Render] is a mutating call: it normalizes the stored order
// before formatting. [Polynomial.String] formats a sorted copy and leaves
// storage alone.
//
// # Negative exponents
//
// Exponents are never validated. A negative exponent renders as x^-k and
// sorts after the constant term.
//
// # Thread Safety
//
// Polynomial values are NOT thread-safe. Wrap them in a mutex if they are
// shared between goroutines.
package poly
