package poly

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Parse replaces the terms with the (coefficient, exponent) pairs read from the
// first line of text. Each number is read as the longest valid prefix, so
// "3 2x" yields 3x^2 and "1.5 2.7" yields 1.5x^2 (".7" then starts a pair
// with no exponent). Reading stops at the first pair that cannot be
// completed; whatever follows is ignored.
func (p *Polynomial) Parse(line string) {
	p.parse(line)
}

// ParseStrict has the same effect as Parse and returns a *ParseError if any
// non-blank input was left unread.
func (p *Polynomial) ParseStrict(line string) error {
	rest := p.parse(line)
	if rest == "" {
		return nil
	}
	kind := ParseTrailingInput
	if p.n == 0 {
		kind = ParseNoPairs
	}
	return &ParseError{Kind: kind, Parsed: p.n, Remainder: rest}
}

// ReadLine reads a single line from r and parses it permissively. A reader at
// EOF leaves the polynomial empty.
func (p *Polynomial) ReadLine(r io.Reader) error {
	line, err := FirstLine(r)
	if err != nil {
		return err
	}
	p.Parse(line)
	return nil
}

// FirstLine returns the text of r up to and excluding the first newline. An
// empty reader yields "".
func FirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// parse returns the trimmed text from the start of the first pair it could
// not complete.
func (p *Polynomial) parse(text string) string {
	p.Reset()
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	r := strings.NewReader(text)
	for {
		skipSpace(r)
		start := len(text) - r.Len()
		if r.Len() == 0 {
			return ""
		}
		t, err := scanPair(r)
		if err != nil {
			return strings.TrimSpace(text[start:])
		}
		p.AddTerm(t.coef, t.exp)
	}
}
