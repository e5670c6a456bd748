package expr

func (c *ConstNode) Clone() Node {
	return Const(c.val)
}

func (v *VarNode) Clone() Node {
	return &VarNode{name: v.name}
}

func (e *EquationNode) Clone() Node {
	return &EquationNode{
		op:       e.op,
		element1: e.element1.Clone(),
		element2: e.element2.Clone(),
	}
}
