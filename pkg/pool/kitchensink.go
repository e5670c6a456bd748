package pool

import (
	"math/rand"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

func init() {
	Register("kitchensink", func() Pool { return &KitchenSinkPool{} })
}

// KitchenSinkPool extends moderate with trig and logarithms.
type KitchenSinkPool struct{}

func (p *KitchenSinkPool) Name() string { return "kitchensink" }

func (p *KitchenSinkPool) RandomLeaf(rng *rand.Rand) expr.Node {
	return (&ModeratePool{}).RandomLeaf(rng)
}

var kitchenSinkUnary = []Unary{
	UnaryNeg,
	UnaryCall,
	UnaryDeriv,
	UnaryTrig,
	UnaryLog,
}

func (p *KitchenSinkPool) RandomUnary(rng *rand.Rand) Unary {
	return kitchenSinkUnary[rng.Intn(len(kitchenSinkUnary))]
}

func (p *KitchenSinkPool) RandomBinary(rng *rand.Rand) expr.Operation {
	return moderateBinary[rng.Intn(len(moderateBinary))]
}

func (p *KitchenSinkPool) RandomTree(rng *rand.Rand, maxDepth int) expr.Node {
	return randomTree(p, rng, maxDepth)
}
