package bank

import (
	"errors"
	"fmt"
)

// LookupErrorKind categorizes a LookupError.
type LookupErrorKind int

const (
	// ErrUndefinedIdentifier: the name is known but has no expression yet.
	ErrUndefinedIdentifier LookupErrorKind = iota
	// ErrUnboundName: the name was never entered.
	ErrUnboundName
)

func (k LookupErrorKind) String() string {
	switch k {
	case ErrUndefinedIdentifier:
		return "undefined identifier"
	case ErrUnboundName:
		return "unbound name"
	default:
		return fmt.Sprintf("lookup error %d", int(k))
	}
}

// LookupError is returned when a name cannot be resolved to an expression.
type LookupError struct {
	Kind LookupErrorKind
	Name rune
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %q: %s", e.Name, e.Kind)
}

// IsLookupError reports whether err carries a LookupError of the given kind.
func IsLookupError(err error, kind LookupErrorKind) bool {
	var le *LookupError
	return errors.As(err, &le) && le.Kind == kind
}
