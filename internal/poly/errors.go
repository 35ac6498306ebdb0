package poly

import (
	"errors"
	"fmt"
)

// Domain errors for polynomial operations.
var (
	// ErrInvalidCapacity indicates a non-positive initial capacity.
	ErrInvalidCapacity = errors.New("poly: capacity must be at least 1")

	// ErrCapacityOverflow indicates the term buffer cannot double any further.
	ErrCapacityOverflow = errors.New("poly: term capacity overflow")

	// ErrMalformedTerm indicates a coefficient or exponent token that could not be read.
	ErrMalformedTerm = errors.New("poly: malformed term")
)

// ParseErrorKind classifies what was left over after a strict parse.
type ParseErrorKind int

const (
	// ParseNoPairs means the input was not blank but no pair could be read.
	ParseNoPairs ParseErrorKind = iota + 1
	// ParseTrailingInput means at least one pair was read before the input stopped parsing.
	ParseTrailingInput
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseNoPairs:
		return "no pairs"
	case ParseTrailingInput:
		return "trailing input"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError reports input that Parse ignored.
type ParseError struct {
	Kind      ParseErrorKind
	Parsed    int
	Remainder string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("poly: %s after %d term(s): %q", e.Kind, e.Parsed, e.Remainder)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedTerm
}
