package pool

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/slices"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

// Pool provides random building blocks for constructing expression trees.
// Every tree a pool builds can be written as a formula and parsed back.
type Pool interface {
	Name() string
	RandomLeaf(rng *rand.Rand) expr.Node
	RandomUnary(rng *rand.Rand) Unary
	RandomBinary(rng *rand.Rand) expr.Operation
	RandomTree(rng *rand.Rand, maxDepth int) expr.Node
}

// Unary is a one-child shape encoded on the two-element equation node.
type Unary int

const (
	UnaryNeg   Unary = iota // 0 - child
	UnaryCall               // f(child), callee from Callees
	UnaryDeriv              // (child)'
	UnaryTrig               // any trig tag
	UnaryLog                // ln, log, log2 or logb
)

// Callees are the function names pool trees call. Tests bind them in a Bank.
var Callees = []rune{'f', 'g', 'h'}

// Names of the bound variables pool leaves reference besides x.
var Variables = []rune{'a', 'b', 'c', 'd'}

var trigTags = []rune{
	expr.TagSin, expr.TagCos, expr.TagTan,
	expr.TagArcsin, expr.TagArccos, expr.TagArctan,
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Apply wraps child in the shape u, drawing any free choice from rng.
func (u Unary) Apply(rng *rand.Rand, child expr.Node) expr.Node {
	switch u {
	case UnaryNeg:
		return expr.Equation(expr.OpSub, expr.Int(0), child)
	case UnaryCall:
		return expr.Equation(expr.OpFunc, expr.Var(Callees[rng.Intn(len(Callees))]), child)
	case UnaryDeriv:
		return expr.Deriv(child)
	case UnaryTrig:
		return expr.Equation(expr.OpTrig, expr.Var(trigTags[rng.Intn(len(trigTags))]), child)
	case UnaryLog:
		return expr.Equation(expr.OpLog, randomLogBase(rng), child)
	default:
		return child
	}
}

func randomLogBase(rng *rand.Rand) expr.Node {
	switch rng.Intn(4) {
	case 0:
		return expr.Var(expr.NaturalBase)
	case 1:
		return expr.Int(10)
	case 2:
		return expr.Int(2)
	default:
		return expr.Var('b')
	}
}

func randomVariable(rng *rand.Rand) expr.Node {
	return expr.Var(Variables[rng.Intn(len(Variables))])
}

// randomTree is a shared helper for building random trees.
func randomTree(p Pool, rng *rand.Rand, maxDepth int) expr.Node {
	if maxDepth <= 1 {
		return p.RandomLeaf(rng)
	}
	// Bias toward leaves at shallow depths to keep trees small
	r := rng.Float64()
	switch {
	case r < 0.4:
		return p.RandomLeaf(rng)
	case r < 0.6:
		return p.RandomUnary(rng).Apply(rng, randomTree(p, rng, maxDepth-1))
	default:
		return expr.Equation(
			p.RandomBinary(rng),
			randomTree(p, rng, maxDepth-1),
			randomTree(p, rng, maxDepth-1),
		)
	}
}
