package syntax

// Tree is an ordered list of sibling nodes at one grammar level. Slots may
// be nil (the structural dump prints them explicitly); all read accessors
// are nil-safe so an absent child tree behaves as an empty one.
type Tree struct {
	name  string
	nodes []*Node
}

// NewTree creates a named tree over the given sibling nodes.
func NewTree(name string, nodes ...*Node) *Tree {
	return &Tree{name: name, nodes: nodes}
}

// Name returns the tree's name, or "" when unnamed.
func (t *Tree) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// SetName names the tree.
func (t *Tree) SetName(name string) { t.name = name }

// Len returns the sibling count. 0 for a nil tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Node returns the i:th sibling, or nil when i is out of range or the slot
// is empty.
func (t *Tree) Node(i int) *Node {
	if t == nil || i < 0 || i >= len(t.nodes) {
		return nil
	}
	return t.nodes[i]
}

// Append adds a sibling at the end of the level.
func (t *Tree) Append(n *Node) {
	t.nodes = append(t.nodes, n)
}
