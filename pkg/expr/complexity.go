package expr

func (c *ConstNode) NodeCount() int { return 1 }
func (v *VarNode) NodeCount() int   { return 1 }
func (e *EquationNode) NodeCount() int {
	return 1 + e.element1.NodeCount() + e.element2.NodeCount()
}

func (c *ConstNode) Depth() int { return 1 }
func (v *VarNode) Depth() int   { return 1 }
func (e *EquationNode) Depth() int {
	d1 := e.element1.Depth()
	d2 := e.element2.Depth()
	if d1 > d2 {
		return 1 + d1
	}
	return 1 + d2
}

func (c *ConstNode) Equal(other Node) bool {
	o, ok := other.(*ConstNode)
	return ok && c.val.Cmp(o.val) == 0
}

func (v *VarNode) Equal(other Node) bool {
	o, ok := other.(*VarNode)
	return ok && v.name == o.name
}

func (e *EquationNode) Equal(other Node) bool {
	o, ok := other.(*EquationNode)
	return ok && e.op == o.op &&
		e.element1.Equal(o.element1) &&
		e.element2.Equal(o.element2)
}
