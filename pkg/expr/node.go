package expr

import "math/big"

// FreeVariable is the distinguished variable bound by the caller at
// evaluation time. Every other identifier is resolved through a Bank.
const FreeVariable = 'x'

// DerivSentinel fills the unused second element of a Deriv node.
const DerivSentinel = '?'

// Node is the interface for all expression tree nodes. The set of
// implementations is closed: ConstNode, VarNode and EquationNode.
type Node interface {
	String() string
	LaTeX() string
	Clone() Node
	NodeCount() int
	Depth() int
	Equal(other Node) bool
	node()
}

// Operation identifies what an EquationNode computes and how its two
// elements are interpreted.
type Operation int

const (
	OpAdd Operation = iota
	OpSub
	OpMult
	OpDiv
	OpFunc  // element1 = callee, element2 = argument
	OpExp   // element1 = base, element2 = exponent
	OpTrig  // element1 = tag (s,c,t; arc versions upper case), element2 = argument
	OpLog   // element1 = base ('e' for natural log), element2 = argument
	OpDeriv // element1 = expression to differentiate, element2 = sentinel
)

var operationNames = map[Operation]string{
	OpAdd:   "add",
	OpSub:   "sub",
	OpMult:  "mult",
	OpDiv:   "div",
	OpFunc:  "func",
	OpExp:   "exp",
	OpTrig:  "trig",
	OpLog:   "log",
	OpDeriv: "deriv",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "unknown"
}

// Trig tags stored in the first element of an OpTrig node.
const (
	TagSin    = 's'
	TagCos    = 'c'
	TagTan    = 't'
	TagArcsin = 'S'
	TagArccos = 'C'
	TagArctan = 'T'
)

// NaturalBase is the Log base tag meaning ln.
const NaturalBase = 'e'

var trigNames = map[rune]string{
	TagSin:    "sin",
	TagCos:    "cos",
	TagTan:    "tan",
	TagArcsin: "arcsin",
	TagArccos: "arccos",
	TagArctan: "arctan",
}

// TrigName returns the external name of a trig tag.
func TrigName(tag rune) (string, bool) {
	name, ok := trigNames[tag]
	return name, ok
}

// ConstNode holds an exact rational constant.
type ConstNode struct {
	val *big.Rat
}

// VarNode is a single-character identifier.
type VarNode struct {
	name rune
}

// EquationNode is the only composite node: an operation applied to two
// exclusively owned elements.
type EquationNode struct {
	op       Operation
	element1 Node
	element2 Node
}

// Const returns a constant node holding a copy of r.
func Const(r *big.Rat) *ConstNode {
	return &ConstNode{val: new(big.Rat).Set(r)}
}

// Int returns a constant node holding v.
func Int(v int64) *ConstNode {
	return &ConstNode{val: new(big.Rat).SetInt64(v)}
}

// Var returns a variable node.
func Var(name rune) *VarNode {
	return &VarNode{name: name}
}

// Equation returns an equation node over the two elements.
func Equation(op Operation, element1, element2 Node) *EquationNode {
	return &EquationNode{op: op, element1: element1, element2: element2}
}

// Deriv returns a pending derivative of e.
func Deriv(e Node) *EquationNode {
	return Equation(OpDeriv, e, Var(DerivSentinel))
}

// Value returns a copy of the constant.
func (c *ConstNode) Value() *big.Rat { return new(big.Rat).Set(c.val) }

// Name returns the identifier.
func (v *VarNode) Name() rune { return v.name }

// IsFree reports whether v is the free variable.
func (v *VarNode) IsFree() bool { return v.name == FreeVariable }

func (e *EquationNode) Op() Operation  { return e.op }
func (e *EquationNode) Element1() Node { return e.element1 }
func (e *EquationNode) Element2() Node { return e.element2 }
func (e *EquationNode) IsDeriv() bool  { return e.op == OpDeriv }

func (*ConstNode) node()    {}
func (*VarNode) node()      {}
func (*EquationNode) node() {}
