package functions

// NodeCount returns the number of nodes in f's expression tree.
func (f *Func) NodeCount() int {
	return f.n.count()
}

// Depth returns the height of f's expression tree. Leaves have depth 1.
func (f *Func) Depth() int {
	return f.n.depth()
}

func (n *node) count() int {
	c := 1
	if n.left != nil {
		c += n.left.count()
	}
	if n.right != nil {
		c += n.right.count()
	}
	return c
}

func (n *node) depth() int {
	var l, r int
	if n.left != nil {
		l = n.left.depth()
	}
	if n.right != nil {
		r = n.right.depth()
	}
	if l > r {
		return 1 + l
	}
	return 1 + r
}
