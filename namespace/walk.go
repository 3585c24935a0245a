package namespace

// Walk visits every node of the tree depth-first, using an explicit
// stack so arbitrarily deep namespaces cannot exhaust the call stack.
// Children are visited in map iteration order, which is unspecified;
// callers must not rely on it.
func (t *Tree) Walk(visit func(node *Node)) {
	stack := []*Node{t.root}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(node)

		for _, child := range node.children {
			stack = append(stack, child)
		}
	}
}
