package pool

import (
	"math/big"
	"math/rand"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

func init() {
	Register("moderate", func() Pool { return &ModeratePool{} })
}

// ModeratePool extends conservative with decimal leaves, calls and
// derivative markers as unary shapes, and power as binary.
type ModeratePool struct{}

func (p *ModeratePool) Name() string { return "moderate" }

var decimals = []*big.Rat{
	big.NewRat(1, 2),
	big.NewRat(1, 4),
	big.NewRat(5, 2),
	big.NewRat(-3, 2),
}

func (p *ModeratePool) RandomLeaf(rng *rand.Rand) expr.Node {
	r := rng.Float64()
	switch {
	case r < 0.35:
		return expr.Var(expr.FreeVariable)
	case r < 0.5:
		return randomVariable(rng)
	case r < 0.85:
		return expr.Int(int64(rng.Intn(10) + 1))
	default:
		return expr.Const(decimals[rng.Intn(len(decimals))])
	}
}

var moderateUnary = []Unary{
	UnaryNeg,
	UnaryCall,
	UnaryDeriv,
}

func (p *ModeratePool) RandomUnary(rng *rand.Rand) Unary {
	return moderateUnary[rng.Intn(len(moderateUnary))]
}

var moderateBinary = []expr.Operation{
	expr.OpAdd,
	expr.OpSub,
	expr.OpMult,
	expr.OpDiv,
	expr.OpExp,
}

func (p *ModeratePool) RandomBinary(rng *rand.Rand) expr.Operation {
	return moderateBinary[rng.Intn(len(moderateBinary))]
}

func (p *ModeratePool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
