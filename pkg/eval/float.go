package eval

import (
	"math"
	"math/big"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

var one = big.NewRat(1, 1)

// trigFuncs maps a trig tag to its float64 implementation.
var trigFuncs = map[rune]func(float64) float64{
	expr.TagSin:    math.Sin,
	expr.TagCos:    math.Cos,
	expr.TagTan:    math.Tan,
	expr.TagArcsin: math.Asin,
	expr.TagArccos: math.Acos,
	expr.TagArctan: math.Atan,
}

// toFloat returns the nearest float64 to r.
func toFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

// fromFloat converts a float64 result back to an exact rational. NaN and
// infinities have no rational form.
func fromFloat(f float64, n expr.Node) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, expr.DomainErrorf(expr.ErrNonFiniteResult, "%s", n)
	}
	return new(big.Rat).SetFloat64(f), nil
}
