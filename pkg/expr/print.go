package expr

import (
	"fmt"
	"math/big"
)

// Canonical text templates. Every composite is fully parenthesized so that
// Parse(n.String()) rebuilds an equal tree. The differentiation engine builds
// its formulas from these same helpers.

func AddText(a, b string) string  { return "(" + a + ")+(" + b + ")" }
func SubText(a, b string) string  { return "(" + a + ")-(" + b + ")" }
func MultText(a, b string) string { return "(" + a + ")(" + b + ")" }
func DivText(a, b string) string  { return "(" + a + ")/(" + b + ")" }
func ExpText(a, b string) string  { return "((" + a + ")^(" + b + "))" }
func DerivText(a string) string   { return "((" + a + ")')" }

// CallText renders a function application.
func CallText(callee, arg string) string { return "(" + callee + "(" + arg + "))" }

// TrigText renders a named trig function such as "sin".
func TrigText(name, arg string) string { return "(" + name + "(" + arg + "))" }

// LnText renders a natural logarithm.
func LnText(arg string) string { return "(ln(" + arg + "))" }

var ten = big.NewRat(10, 1)

// String methods

func (c *ConstNode) String() string {
	return formatRat(c.val)
}

func (v *VarNode) String() string {
	return string(v.name)
}

func (e *EquationNode) String() string {
	a := e.element1.String()
	b := e.element2.String()
	switch e.op {
	case OpAdd:
		return AddText(a, b)
	case OpSub:
		return SubText(a, b)
	case OpMult:
		return MultText(a, b)
	case OpDiv:
		return DivText(a, b)
	case OpFunc:
		return CallText(a, b)
	case OpExp:
		return ExpText(a, b)
	case OpTrig:
		if tag, ok := e.element1.(*VarNode); ok {
			if name, ok := TrigName(tag.name); ok {
				return TrigText(name, b)
			}
		}
		return CallText(a, b)
	case OpLog:
		return logString(e.element1, b)
	case OpDeriv:
		return DerivText(a)
	default:
		return fmt.Sprintf("(%s?%s)", a, b)
	}
}

func logString(base Node, arg string) string {
	switch n := base.(type) {
	case *VarNode:
		if n.name == NaturalBase {
			return LnText(arg)
		}
		return "(log" + n.String() + "(" + arg + "))"
	case *ConstNode:
		if n.val.Cmp(ten) == 0 {
			return "(log(" + arg + "))"
		}
		if s := n.String(); isLogBaseText([]rune(s)) {
			return "(log" + s + "(" + arg + "))"
		}
	}
	// Only hand-built trees carry a composite base; the parser rejects them.
	return DivText(LnText(arg), LnText(base.String()))
}

// formatRat renders integers plainly, terminating fractions as exact
// decimals and anything else as a parenthesized quotient.
func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	if digits, ok := decimalDigits(r.Denom()); ok {
		return r.FloatString(digits)
	}
	return "(" + r.RatString() + ")"
}

// decimalDigits returns the number of fractional digits needed to write
// 1/d exactly, if d only has the prime factors 2 and 5.
func decimalDigits(d *big.Int) (int, bool) {
	n := new(big.Int).Set(d)
	two, five := big.NewInt(2), big.NewInt(5)
	var rem big.Int
	twos, fives := 0, 0
	for {
		q, r := new(big.Int).QuoRem(n, two, &rem)
		if r.Sign() != 0 {
			break
		}
		n = q
		twos++
	}
	for {
		q, r := new(big.Int).QuoRem(n, five, &rem)
		if r.Sign() != 0 {
			break
		}
		n = q
		fives++
	}
	if n.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// LaTeX methods

func (c *ConstNode) LaTeX() string {
	if c.val.IsInt() {
		return c.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(c.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func (v *VarNode) LaTeX() string {
	return string(v.name)
}

func (e *EquationNode) LaTeX() string {
	a := e.element1.LaTeX()
	b := e.element2.LaTeX()
	switch e.op {
	case OpAdd:
		return fmt.Sprintf("{%s} + {%s}", a, b)
	case OpSub:
		return fmt.Sprintf("{%s} - {%s}", a, b)
	case OpMult:
		return fmt.Sprintf("{%s} \\cdot {%s}", a, b)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", a, b)
	case OpFunc:
		return fmt.Sprintf("%s(%s)", a, b)
	case OpExp:
		return fmt.Sprintf("{%s}^{%s}", a, b)
	case OpTrig:
		if tag, ok := e.element1.(*VarNode); ok {
			if name, ok := TrigName(tag.name); ok {
				return fmt.Sprintf("\\%s{(%s)}", name, b)
			}
		}
		return fmt.Sprintf("%s(%s)", a, b)
	case OpLog:
		if base, ok := e.element1.(*VarNode); ok && base.name == NaturalBase {
			return fmt.Sprintf("\\ln{(%s)}", b)
		}
		return fmt.Sprintf("\\log_{%s}{(%s)}", a, b)
	case OpDeriv:
		return fmt.Sprintf("{%s}'", a)
	default:
		return ""
	}
}
