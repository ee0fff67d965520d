package nav

// Kind distinguishes the two node variants: containers and navigable entries.
type Kind string

const (
	// KindFolder is a category node. It may own children and carries no URL.
	KindFolder Kind = "folder"
	// KindLink is a navigable site entry. It never has children.
	KindLink Kind = "link"
)

const (
	// RootID is the reserved id of the synthetic root node. It never
	// appears in raw input; the builder owns it.
	RootID = "root"

	// RootName is the display label of the synthetic root.
	RootName = "All Bookmarks"

	// DefaultSortOrder is assigned when a sort_order field is missing or
	// unparsable, so unordered items sort after explicitly ordered ones.
	DefaultSortOrder = 9999
)

// Node is the canonical in-memory representation of either a category or a
// site entry. Nodes hold no parent pointer; parent lookup goes through the
// tree's PathTo, which keeps the structure free of reference cycles.
type Node struct {
	ID          string  `json:"id"`
	ParentID    string  `json:"parent_id,omitempty"`
	Name        string  `json:"name"`
	Kind        Kind    `json:"kind"`
	URL         string  `json:"url,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Description string  `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
	Children    []*Node `json:"children,omitempty"`
}

// IsFolder reports whether the node is a category container.
func (n *Node) IsFolder() bool { return n.Kind == KindFolder }
