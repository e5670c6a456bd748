package expr

import (
	"errors"
	"fmt"
)

// ParseErrorKind categorizes a ParseError.
type ParseErrorKind int

const (
	ErrUnbalancedBrackets ParseErrorKind = iota
	ErrEmptyOperand
	ErrMultiCharacterIdentifier
	ErrEmptyInput
	ErrInvalidCharacter
	ErrUnexpectedText
	ErrTooDeep
)

var parseErrorNames = map[ParseErrorKind]string{
	ErrUnbalancedBrackets:       "unbalanced brackets",
	ErrEmptyOperand:             "empty operand",
	ErrMultiCharacterIdentifier: "multi-character identifier",
	ErrEmptyInput:               "empty input",
	ErrInvalidCharacter:         "invalid character",
	ErrUnexpectedText:           "unexpected text",
	ErrTooDeep:                  "formula nested too deeply",
}

func (k ParseErrorKind) String() string {
	if name, ok := parseErrorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("parse error %d", int(k))
}

// ParseError reports why a formula, or one of its substrings, could not be
// parsed. Pos is a rune offset into Text, or -1 when no position applies.
type ParseError struct {
	Kind ParseErrorKind
	Text string
	Pos  int
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("parse %q: %s at %d", e.Text, e.Kind, e.Pos)
	}
	return fmt.Sprintf("parse %q: %s", e.Text, e.Kind)
}

func parseErr(kind ParseErrorKind, text []rune, pos int) error {
	return &ParseError{Kind: kind, Text: string(text), Pos: pos}
}

// IsParseError reports whether err carries a ParseError of the given kind.
func IsParseError(err error, kind ParseErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

// DomainErrorKind categorizes a DomainError.
type DomainErrorKind int

const (
	ErrUnrecognizedTrigTag DomainErrorKind = iota
	ErrUnrecognizedLogBase
	ErrMalformedNodeShape
	ErrDivisionByZero
	ErrNonFiniteResult
	ErrDepthExceeded
	ErrMissingPoint
)

var domainErrorNames = map[DomainErrorKind]string{
	ErrUnrecognizedTrigTag: "unrecognized trig tag",
	ErrUnrecognizedLogBase: "unrecognized log base",
	ErrMalformedNodeShape:  "malformed node shape",
	ErrDivisionByZero:      "division by zero",
	ErrNonFiniteResult:     "non-finite result",
	ErrDepthExceeded:       "recursion limit exceeded",
	ErrMissingPoint:        "missing evaluation point",
}

func (k DomainErrorKind) String() string {
	if name, ok := domainErrorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("domain error %d", int(k))
}

// DomainError is raised while evaluating or differentiating a tree that is
// well formed text but cannot be computed.
type DomainError struct {
	Kind   DomainErrorKind
	Detail string
}

func (e *DomainError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// DomainErrorf builds a DomainError with a formatted detail message.
func DomainErrorf(kind DomainErrorKind, format string, args ...interface{}) error {
	return &DomainError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// IsDomainError reports whether err carries a DomainError of the given kind.
func IsDomainError(err error, kind DomainErrorKind) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == kind
}
