package namespace

import "github.com/mwantia/fsindex/data"

// Node is a single entry in the namespace tree, either a directory with
// children or a file holding its metadata record.
//
// The parent reference is non-owning: it is resolved on demand through
// Parent and is cleared when the node is detached, so a node outliving
// its parent observes the absence as a normal state rather than a fault.
type Node struct {
	// Path segment naming this node inside its parent
	Name string

	// Distinguishes directories from file leaves
	Dir bool

	// Metadata record owned by the flat table, set on file nodes only
	Record *data.FileRecord

	children map[string]*Node
	parent   *Node
}

func newDirectory(name string, parent *Node) *Node {
	return &Node{
		Name:     name,
		Dir:      true,
		children: make(map[string]*Node),
		parent:   parent,
	}
}

func newFile(name string, rec *data.FileRecord, parent *Node) *Node {
	return &Node{
		Name:     name,
		Record:   rec,
		children: make(map[string]*Node),
		parent:   parent,
	}
}

// Parent resolves the back-reference to the containing directory.
// The second return is false once the node has been detached.
func (n *Node) Parent() (*Node, bool) {
	if n.parent == nil {
		return nil, false
	}

	return n.parent, true
}

// Child returns the direct child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	child, exists := n.children[name]
	return child, exists
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}
