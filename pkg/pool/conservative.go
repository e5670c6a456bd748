package pool

import (
	"math/rand"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

func init() {
	Register("conservative", func() Pool { return &ConservativePool{} })
}

// ConservativePool provides basic building blocks: x, the bound variables,
// ints 0-10, negation and the four arithmetic operations.
type ConservativePool struct{}

func (p *ConservativePool) Name() string { return "conservative" }

func (p *ConservativePool) RandomLeaf(rng *rand.Rand) expr.Node {
	r := rng.Float64()
	switch {
	case r < 0.4:
		return expr.Var(expr.FreeVariable)
	case r < 0.55:
		return randomVariable(rng)
	default:
		return expr.Int(int64(rng.Intn(11)))
	}
}

var conservativeUnary = []Unary{
	UnaryNeg,
}

func (p *ConservativePool) RandomUnary(rng *rand.Rand) Unary {
	return conservativeUnary[rng.Intn(len(conservativeUnary))]
}

var conservativeBinary = []expr.Operation{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMult,
	expr.OpDiv,
}

func (p *ConservativePool) RandomBinary(rng *rand.Rand) expr.Operation {
	return conservativeBinary[rng.Intn(len(conservativeBinary))]
}

func (p *ConservativePool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
