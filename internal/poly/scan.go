package poly

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// The readers below consume the longest run of characters that can start a
// number and stop at the first one that cannot, leaving it unread. A run that
// does not form a valid number ("-", "1e", ".") is a failed read, as with a
// stream extractor.

func skipSpace(rs io.RuneScanner) {
	for {
		r, _, err := rs.ReadRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			_ = rs.UnreadRune()
			return
		}
	}
}

// accept appends runes to b while ok reports true and returns the first
// rejected rune (unread) or -1 at end of input.
func accept(rs io.RuneScanner, b *strings.Builder, ok func(rune) bool) rune {
	for {
		r, _, err := rs.ReadRune()
		if err != nil {
			return -1
		}
		if !ok(r) {
			_ = rs.UnreadRune()
			return r
		}
		b.WriteRune(r)
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
func isSign(r rune) bool  { return r == '+' || r == '-' }

func acceptOne(rs io.RuneScanner, b *strings.Builder, ok func(rune) bool) bool {
	r, _, err := rs.ReadRune()
	if err != nil {
		return false
	}
	if !ok(r) {
		_ = rs.UnreadRune()
		return false
	}
	b.WriteRune(r)
	return true
}

// scanFloat reads [sign] digits [. digits] [(e|E) [sign] digits]. NaN, Inf and
// out-of-range values are rejected.
func scanFloat(rs io.RuneScanner) (float64, string, bool) {
	var b strings.Builder
	acceptOne(rs, &b, isSign)
	accept(rs, &b, isDigit)
	if acceptOne(rs, &b, func(r rune) bool { return r == '.' }) {
		accept(rs, &b, isDigit)
	}
	if acceptOne(rs, &b, func(r rune) bool { return r == 'e' || r == 'E' }) {
		acceptOne(rs, &b, isSign)
		accept(rs, &b, isDigit)
	}
	text := b.String()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, text, false
	}
	return v, text, true
}

// scanInt reads [sign] digits. Values outside the int range are rejected.
func scanInt(rs io.RuneScanner) (int, string, bool) {
	var b strings.Builder
	acceptOne(rs, &b, isSign)
	accept(rs, &b, isDigit)
	text := b.String()
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, text, false
	}
	return v, text, true
}

// scanPair reads one coefficient and one exponent, skipping leading space
// before each.
func scanPair(rs io.RuneScanner) (Term, error) {
	skipSpace(rs)
	c, ctext, ok := scanFloat(rs)
	if !ok {
		return Term{}, malformed("coefficient", ctext)
	}
	skipSpace(rs)
	e, etext, ok := scanInt(rs)
	if !ok {
		return Term{}, malformed("exponent", etext)
	}
	return NewTerm(c, e), nil
}
