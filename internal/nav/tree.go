package nav

import "sort"

// DanglingPolicy decides what happens to a node whose parent id does not
// resolve to any known node. One policy applies to the whole build.
type DanglingPolicy string

const (
	// DanglingAttachRoot attaches orphaned nodes to the root so no node
	// is silently lost. This is the default.
	DanglingAttachRoot DanglingPolicy = "attach-root"
	// DanglingDrop leaves orphaned nodes out of the tree entirely. They
	// remain reachable by id lookup but not by traversal.
	DanglingDrop DanglingPolicy = "drop"
)

// Tree is the assembled hierarchy: a synthetic root owning all top-level
// nodes, plus an id index for O(1) lookup. Trees are immutable once built;
// a reload produces a whole new Tree.
type Tree struct {
	Root  *Node
	Index map[string]*Node
}

// Build assembles a tree from canonical nodes. Input nodes are copied, so
// callers may reuse their slices across builds; readers holding a
// previously built tree never observe mutation.
//
// Duplicate ids resolve last-write-wins in the index; the earlier node is
// dropped from linking. A parent id of "" or RootID places a folder under
// the root directly; links without a resolvable parent follow the dangling
// policy.
func Build(nodes []*Node, policy DanglingPolicy) *Tree {
	root := &Node{ID: RootID, Name: RootName, Kind: KindFolder}
	index := make(map[string]*Node, len(nodes)+1)

	// First pass: copy every node into the index with an empty child list.
	copies := make([]*Node, len(nodes))
	for i, n := range nodes {
		c := *n
		c.Children = nil
		copies[i] = &c
		index[c.ID] = &c
	}
	index[RootID] = root

	// Second pass: link children to parents in input order. A copy that
	// lost the index slot to a later duplicate does not get linked.
	for _, c := range copies {
		if index[c.ID] != c {
			continue
		}
		switch {
		case c.ParentID == "" && c.Kind == KindFolder:
			root.Children = append(root.Children, c)
		case c.ParentID == "":
			attachDangling(root, c, policy)
		default:
			parent, ok := index[c.ParentID]
			if ok && parent != c {
				parent.Children = append(parent.Children, c)
			} else {
				attachDangling(root, c, policy)
			}
		}
	}

	// Sort every sibling list: folders before links, then ascending
	// sort order, input order breaking ties.
	for _, c := range copies {
		sortSiblings(c.Children)
	}
	sortSiblings(root.Children)

	return &Tree{Root: root, Index: index}
}

func attachDangling(root *Node, n *Node, policy DanglingPolicy) {
	if policy == DanglingDrop {
		return
	}
	root.Children = append(root.Children, n)
}

func sortSiblings(children []*Node) {
	if len(children) < 2 {
		return
	}
	sort.SliceStable(children, func(i, j int) bool {
		a, b := children[i], children[j]
		if a.Kind != b.Kind {
			return a.Kind == KindFolder
		}
		return a.SortOrder < b.SortOrder
	})
}

// Node returns the node with the given id, or nil when unknown.
func (t *Tree) Node(id string) *Node {
	if t == nil {
		return nil
	}
	return t.Index[id]
}

// Children returns the ordered child list of the given parent. An empty
// parent id or RootID addresses the root. Unknown ids yield nil.
func (t *Tree) Children(parentID string) []*Node {
	if t == nil {
		return nil
	}
	if parentID == "" || parentID == RootID {
		return t.Root.Children
	}
	n := t.Index[parentID]
	if n == nil {
		return nil
	}
	return n.Children
}
