// Package deriv computes symbolic derivatives of expression trees.
//
// Results are built by assembling formula text from the canonical printer
// templates and parsing it, so every derivative is itself a well formed,
// re-parseable tree. Leaves are not reduced to 0 or 1 here; they become
// pending derivative nodes that Resolve settles against a set of
// definitions. No simplification is applied.
package deriv

import (
	"fmt"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

// Differentiate returns the derivative of n with respect to the free
// variable.
func Differentiate(n expr.Node) (expr.Node, error) {
	switch n := n.(type) {
	case *expr.ConstNode, *expr.VarNode:
		return build(expr.DerivText(n.String()))
	case *expr.EquationNode:
		return differentiateEquation(n)
	default:
		return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "unknown node type %T", n)
	}
}

func differentiateEquation(e *expr.EquationNode) (expr.Node, error) {
	f, g := e.Element1(), e.Element2()

	switch e.Op() {
	case expr.OpAdd, expr.OpSub, expr.OpMult, expr.OpDiv, expr.OpExp:
		fp, gp, err := both(f, g)
		if err != nil {
			return nil, err
		}
		return build(arithmetic(e.Op(), f.String(), g.String(), fp.String(), gp.String()))

	case expr.OpFunc:
		callee, ok := f.(*expr.VarNode)
		if !ok {
			return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "callee %s is not an identifier", f)
		}
		gp, err := Differentiate(g)
		if err != nil {
			return nil, err
		}
		// (f'(g)) parses to the pending derivative of the callee.
		return build(expr.MultText(expr.CallText(callee.String()+"'", g.String()), gp.String()))

	case expr.OpTrig:
		tag, ok := f.(*expr.VarNode)
		if !ok {
			return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "trig tag %s is not a character", f)
		}
		outer, err := trigDerivative(tag.Name(), g.String())
		if err != nil {
			return nil, err
		}
		gp, err := Differentiate(g)
		if err != nil {
			return nil, err
		}
		return build(expr.MultText(outer, gp.String()))

	case expr.OpLog:
		gp, err := Differentiate(g)
		if err != nil {
			return nil, err
		}
		a := g.String()
		if base, ok := f.(*expr.VarNode); ok && base.Name() == expr.NaturalBase {
			return build(expr.MultText(expr.DivText("1", a), gp.String()))
		}
		denom := expr.MultText(a, expr.LnText(f.String()))
		return build(expr.MultText(expr.DivText("1", denom), gp.String()))

	case expr.OpDeriv:
		return build(expr.DerivText(expr.DerivText(f.String())))

	default:
		return nil, expr.DomainErrorf(expr.ErrMalformedNodeShape, "unknown operation %s", e.Op())
	}
}

func both(f, g expr.Node) (expr.Node, expr.Node, error) {
	fp, err := Differentiate(f)
	if err != nil {
		return nil, nil, err
	}
	gp, err := Differentiate(g)
	if err != nil {
		return nil, nil, err
	}
	return fp, gp, nil
}

func arithmetic(op expr.Operation, f, g, fp, gp string) string {
	switch op {
	case expr.OpAdd:
		return expr.AddText(fp, gp)
	case expr.OpSub:
		return expr.SubText(fp, gp)
	case expr.OpMult:
		return expr.AddText(expr.MultText(f, gp), expr.MultText(fp, g))
	case expr.OpDiv:
		num := expr.SubText(expr.MultText(g, fp), expr.MultText(f, gp))
		return expr.DivText(num, expr.ExpText(g, "2"))
	default:
		// f^g (g' ln f + f' g / f)
		inner := expr.AddText(
			expr.MultText(gp, expr.LnText(f)),
			expr.DivText(expr.MultText(fp, g), f),
		)
		return expr.MultText(expr.ExpText(f, g), inner)
	}
}

// trigDerivative returns the outer derivative of a trig function at arg,
// before the chain rule factor.
func trigDerivative(tag rune, arg string) (string, error) {
	// 1 - arg^2 under a square root, shared by arcsin and arccos
	root := expr.ExpText(expr.SubText("1", expr.ExpText(arg, "2")), expr.DivText("1", "2"))

	switch tag {
	case expr.TagSin:
		return expr.TrigText("cos", arg), nil
	case expr.TagCos:
		return expr.SubText("0", expr.TrigText("sin", arg)), nil
	case expr.TagTan:
		return expr.DivText("1", expr.ExpText(expr.TrigText("cos", arg), "2")), nil
	case expr.TagArcsin:
		return expr.DivText("1", root), nil
	case expr.TagArccos:
		return expr.SubText("0", expr.DivText("1", root)), nil
	case expr.TagArctan:
		return expr.DivText("1", expr.AddText("1", expr.ExpText(arg, "2"))), nil
	default:
		return "", expr.DomainErrorf(expr.ErrUnrecognizedTrigTag, "%q", tag)
	}
}

func build(text string) (expr.Node, error) {
	n, err := expr.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("building derivative: %w", err)
	}
	return n, nil
}
