package nav

// PathTo returns the ordered node sequence from the root to the node with
// the given id, inclusive. The root id yields [root]; unknown ids yield
// nil.
//
// The traversal is iterative with an explicit work stack so call-stack
// depth stays constant regardless of tree depth, and it tracks visited ids
// so a malformed tree with a cycle still terminates.
func (t *Tree) PathTo(id string) []*Node {
	if t == nil || t.Root == nil || id == "" {
		return nil
	}

	type frame struct {
		node *Node
		path []*Node
	}
	visited := make(map[string]bool)
	stack := []frame{{node: t.Root, path: []*Node{t.Root}}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[f.node.ID] {
			continue
		}
		visited[f.node.ID] = true

		if f.node.ID == id {
			return f.path
		}
		for _, child := range f.node.Children {
			path := make([]*Node, len(f.path)+1)
			copy(path, f.path)
			path[len(f.path)] = child
			stack = append(stack, frame{node: child, path: path})
		}
	}
	return nil
}
