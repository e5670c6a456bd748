// Package eval computes the value of an expression tree at a point.
//
// Add, Sub, Mult and Div are exact over big.Rat. Exp, Trig and Log pass
// through float64 and lose exactness for the rest of the evaluation.
// Identifiers other than the free variable are looked up when they are
// reached, so the result always reflects the current definitions.
package eval

import (
	"math"
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/wildfunctions/apcalc/pkg/deriv"
	"github.com/wildfunctions/apcalc/pkg/expr"
)

// DefaultMaxDepth bounds nested evaluation frames, counting tree depth,
// definition lookups and resolved derivatives.
const DefaultMaxDepth = 4096

// Evaluator evaluates trees against a fixed set of definitions. It holds no
// per-call state and is safe for concurrent use when defs is.
type Evaluator struct {
	defs     deriv.Definitions
	maxDepth int
	resolver deriv.Resolver
	log      *log.Entry
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxDepth sets the frame budget. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// WithResolver sets the resolver used for pending derivatives.
func WithResolver(r deriv.Resolver) Option {
	return func(e *Evaluator) { e.resolver = r }
}

// WithLogger routes debug traces to l.
func WithLogger(l *log.Entry) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an Evaluator over defs.
func New(defs deriv.Definitions, opts ...Option) *Evaluator {
	e := &Evaluator{
		defs:     defs,
		maxDepth: DefaultMaxDepth,
		resolver: deriv.Resolver{MaxDepth: deriv.DefaultMaxDepth},
		log:      log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate computes n at x using a default Evaluator.
func Evaluate(n expr.Node, defs deriv.Definitions, x *big.Rat) (*big.Rat, error) {
	return New(defs).Evaluate(n, x)
}

// Evaluate computes n with the free variable bound to x. The returned value
// is never shared with the tree or with x.
func (e *Evaluator) Evaluate(n expr.Node, x *big.Rat) (*big.Rat, error) {
	if x == nil {
		return nil, expr.DomainErrorf(expr.ErrMissingPoint, "evaluating %s", n)
	}
	return e.eval(n, x, 0)
}

func (e *Evaluator) eval(n expr.Node, x *big.Rat, depth int) (*big.Rat, error) {
	if depth > e.maxDepth {
		return nil, expr.DomainErrorf(expr.ErrDepthExceeded, "evaluating %s", n)
	}

	switch n := n.(type) {
	case *expr.ConstNode:
		return n.Value(), nil
	case *expr.VarNode:
		if n.IsFree() {
			return new(big.Rat).Set(x), nil
		}
		e.log.Debugf("looking up %q", n.Name())
		def, err := e.defs.Lookup(n.Name())
		if err != nil {
			return nil, err
		}
		return e.eval(def, x, depth+1)
	case *expr.EquationNode:
		return e.equation(n, x, depth)
	default:
		return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "unknown node type %T", n)
	}
}

func (e *Evaluator) equation(n *expr.EquationNode, x *big.Rat, depth int) (*big.Rat, error) {
	switch n.Op() {
	case expr.OpAdd, expr.OpSub, expr.OpMult, expr.OpDiv:
		a, b, err := e.operands(n, x, depth)
		if err != nil {
			return nil, err
		}
		return arithmetic(n, a, b)

	case expr.OpExp:
		a, b, err := e.operands(n, x, depth)
		if err != nil {
			return nil, err
		}
		return fromFloat(math.Pow(toFloat(a), toFloat(b)), n)

	case expr.OpTrig:
		tag, ok := n.Element1().(*expr.VarNode)
		if !ok {
			return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "trig tag %s is not a character", n.Element1())
		}
		fn, ok := trigFuncs[tag.Name()]
		if !ok {
			return nil, expr.DomainErrorf(expr.ErrUnrecognizedTrigTag, "%q", tag.Name())
		}
		v, err := e.eval(n.Element2(), x, depth+1)
		if err != nil {
			return nil, err
		}
		return fromFloat(fn(toFloat(v)), n)

	case expr.OpLog:
		return e.logarithm(n, x, depth)

	case expr.OpFunc:
		// The argument is not substituted: the callee is evaluated at the
		// same point as the caller.
		return e.eval(n.Element1(), x, depth+1)

	case expr.OpDeriv:
		e.log.Debugf("resolving deferred derivative of %s", n.Element1())
		d, err := e.resolver.Resolve(n.Element1(), e.defs)
		if err != nil {
			return nil, err
		}
		return e.eval(d, x, depth+1)

	default:
		return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "unknown operation %s", n.Op())
	}
}

func (e *Evaluator) operands(n *expr.EquationNode, x *big.Rat, depth int) (*big.Rat, *big.Rat, error) {
	a, err := e.eval(n.Element1(), x, depth+1)
	if err != nil {
		return nil, nil, err
	}
	b, err := e.eval(n.Element2(), x, depth+1)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func arithmetic(n *expr.EquationNode, a, b *big.Rat) (*big.Rat, error) {
	r := new(big.Rat)
	switch n.Op() {
	case expr.OpAdd:
		return r.Add(a, b), nil
	case expr.OpSub:
		return r.Sub(a, b), nil
	case expr.OpMult:
		return r.Mul(a, b), nil
	default:
		if b.Sign() == 0 {
			return nil, expr.DomainErrorf(expr.ErrDivisionByZero, "%s", n)
		}
		return r.Quo(a, b), nil
	}
}

func (e *Evaluator) logarithm(n *expr.EquationNode, x *big.Rat, depth int) (*big.Rat, error) {
	arg, err := e.eval(n.Element2(), x, depth+1)
	if err != nil {
		return nil, err
	}
	lnArg := math.Log(toFloat(arg))
	if base, ok := n.Element1().(*expr.VarNode); ok && base.Name() == expr.NaturalBase {
		return fromFloat(lnArg, n)
	}

	base, err := e.eval(n.Element1(), x, depth+1)
	if err != nil {
		return nil, err
	}
	if base.Sign() <= 0 || base.Cmp(one) == 0 {
		return nil, expr.DomainErrorf(expr.ErrUnrecognizedLogBase, "base %s in %s", base.RatString(), n)
	}
	return fromFloat(lnArg/math.Log(toFloat(base)), n)
}
