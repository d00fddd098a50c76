package expr

func (v *VarNode) NodeCount() int   { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

// Depth is 0 for a leaf, else 1 + the deepest child.
func (v *VarNode) Depth() int   { return 0 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}

// MinLeafDepth returns the distance from the root to the shallowest leaf.
func MinLeafDepth(node Node) int {
	switch n := node.(type) {
	case *UnaryNode:
		return 1 + MinLeafDepth(n.Child)
	case *BinaryNode:
		return 1 + min(MinLeafDepth(n.Left), MinLeafDepth(n.Right))
	default:
		return 0
	}
}
