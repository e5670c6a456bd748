package deriv

import "github.com/wildfunctions/apcalc/pkg/expr"

// DefaultMaxDepth bounds how many pending derivatives may be nested inside
// one another during a single resolution.
const DefaultMaxDepth = 256

// Definitions resolves identifiers other than the free variable.
type Definitions interface {
	Lookup(name rune) (expr.Node, error)
}

// Resolver settles pending derivative requests against Definitions.
type Resolver struct {
	MaxDepth int
}

// Resolve settles the pending derivative of n using a default Resolver.
func Resolve(n expr.Node, defs Definitions) (expr.Node, error) {
	r := Resolver{MaxDepth: DefaultMaxDepth}
	return r.Resolve(n, defs)
}

// Resolve returns the derivative of n. Constants give 0, the free variable
// gives 1 and any other identifier is looked up and differentiated. A
// pending derivative is resolved twice, which yields higher orders for
// chained markers.
func (r Resolver) Resolve(n expr.Node, defs Definitions) (expr.Node, error) {
	return r.resolve(n, defs, 0)
}

func (r Resolver) resolve(n expr.Node, defs Definitions, depth int) (expr.Node, error) {
	limit := r.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	if depth > limit {
		return nil, expr.DomainErrorf(expr.ErrDepthExceeded, "resolving derivative of %s", n)
	}

	switch n := n.(type) {
	case *expr.ConstNode:
		return expr.Int(0), nil
	case *expr.VarNode:
		if n.IsFree() {
			return expr.Int(1), nil
		}
		def, err := defs.Lookup(n.Name())
		if err != nil {
			return nil, err
		}
		return Differentiate(def)
	case *expr.EquationNode:
		if !n.IsDeriv() {
			return Differentiate(n)
		}
		inner, err := r.resolve(n.Element1(), defs, depth+1)
		if err != nil {
			return nil, err
		}
		return r.resolve(inner, defs, depth+1)
	default:
		return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "unknown node type %T", n)
	}
}
