package pool

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/wildfunctions/apcalc/pkg/bank"
	"github.com/wildfunctions/apcalc/pkg/eval"
	"github.com/wildfunctions/apcalc/pkg/expr"
)

// testBank binds every name pool trees can reference.
func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.New('f', "x+1")
	if err != nil {
		t.Fatal(err)
	}
	defs := map[rune]string{'g': "2x", 'h': "x^2", 'a': "2", 'b': "3", 'c': "0.5", 'd': "7"}
	for name, text := range defs {
		if err := b.DefineFunction(name, text); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

// evalRate reports the fraction of random trees from p that evaluate cleanly.
func evalRate(t *testing.T, p Pool, maxDepth int) float64 {
	t.Helper()
	b := testBank(t)
	rng := rand.New(rand.NewSource(42))

	successes := 0
	total := 1000
	for i := 0; i < total; i++ {
		tree := p.RandomTree(rng, maxDepth)
		x := big.NewRat(int64(rng.Intn(10)+1), 1)
		if _, err := eval.Evaluate(tree, b, x); err == nil {
			successes++
		}
	}
	return float64(successes) / float64(total)
}

func TestConservativePool(t *testing.T) {
	p, err := Get("conservative")
	if err != nil {
		t.Fatal(err)
	}
	rate := evalRate(t, p, 3)
	// At least 50% should evaluate successfully
	if rate < 0.5 {
		t.Errorf("Only %.0f%% of trees evaluated successfully", rate*100)
	}
	t.Logf("Conservative pool: %.0f%% of trees evaluated cleanly", rate*100)
}

func TestModeratePool(t *testing.T) {
	p, err := Get("moderate")
	if err != nil {
		t.Fatal(err)
	}
	rate := evalRate(t, p, 3)
	if rate < 0.3 {
		t.Errorf("Only %.0f%% of trees evaluated successfully", rate*100)
	}
	t.Logf("Moderate pool: %.0f%% of trees evaluated cleanly", rate*100)
}

func TestKitchenSinkPool(t *testing.T) {
	p, err := Get("kitchensink")
	if err != nil {
		t.Fatal(err)
	}
	rate := evalRate(t, p, 3)
	if rate < 0.2 {
		t.Errorf("Only %.0f%% of trees evaluated successfully", rate*100)
	}
	t.Logf("Kitchen sink pool: %.0f%% of trees evaluated cleanly", rate*100)
}

func TestConservativeTreesAreExact(t *testing.T) {
	p := &ConservativePool{}
	b := testBank(t)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		tree := p.RandomTree(rng, 4)
		for _, op := range operations(tree) {
			switch op {
			case expr.OpAdd, expr.OpSub, expr.OpMult, expr.OpDiv:
			default:
				t.Fatalf("conservative tree %s uses %s", tree, op)
			}
		}
		// Rational arithmetic on rationals: the same point always gives the
		// same exact value.
		x := big.NewRat(7, 3)
		v1, err1 := eval.Evaluate(tree, b, x)
		v2, err2 := eval.Evaluate(tree, b, x)
		if (err1 == nil) != (err2 == nil) || (err1 == nil && v1.Cmp(v2) != 0) {
			t.Fatalf("evaluation of %s is not deterministic", tree)
		}
	}
}

func operations(n expr.Node) []expr.Operation {
	e, ok := n.(*expr.EquationNode)
	if !ok {
		return nil
	}
	ops := []expr.Operation{e.Op()}
	ops = append(ops, operations(e.Element1())...)
	return append(ops, operations(e.Element2())...)
}

func TestUnaryShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	child := expr.Var('x')

	if n := UnaryNeg.Apply(rng, child); !n.Equal(expr.MustParse("-x")) {
		t.Errorf("UnaryNeg = %s", n)
	}
	if n := UnaryDeriv.Apply(rng, child); !n.Equal(expr.MustParse("x'")) {
		t.Errorf("UnaryDeriv = %s", n)
	}
	for _, u := range []Unary{UnaryCall, UnaryTrig, UnaryLog} {
		n, ok := u.Apply(rng, child).(*expr.EquationNode)
		if !ok || !n.Element2().Equal(child) {
			t.Errorf("Unary %d did not wrap its child: %v", u, n)
		}
	}
}

func TestPoolRegistry(t *testing.T) {
	names := Names()
	if len(names) < 3 {
		t.Errorf("Expected at least 3 registered pools, got %d", len(names))
	}

	for _, name := range names {
		p, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
			continue
		}
		if p.Name() != name {
			t.Errorf("Pool name mismatch: %q vs %q", p.Name(), name)
		}
	}
}

func TestUnknownPool(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil {
		t.Error("Expected error for unknown pool")
	}
}
