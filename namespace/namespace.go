// Package namespace implements the hierarchical, path-addressed tree of
// directory and file nodes that owns the canonical placement of every file.
//
// The tree itself is not synchronized. The store guards it together with
// the flat record table under one structural lock, since the two are
// always mutated as a unit.
package namespace

import (
	"strings"

	"github.com/mwantia/fsindex/data"
)

// Separator is the fixed path delimiter of the namespace.
const Separator = "/"

// Tree is the namespace root.
type Tree struct {
	root *Node
}

// NewTree creates a namespace holding only the root directory.
func NewTree() *Tree {
	return &Tree{
		root: newDirectory(Separator, nil),
	}
}

// Root returns the root directory node.
func (t *Tree) Root() *Node {
	return t.root
}

// EnsurePath walks the absolute path segment by segment, creating missing
// intermediate directories, and returns the node for the final segment.
// The root path resolves to the root node directly.
// Returns ErrInvalidPath when the path is empty or not absolute.
func (t *Tree) EnsurePath(path string) (*Node, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	current := t.root
	for _, segment := range segments {
		child, exists := current.children[segment]
		if !exists {
			child = newDirectory(segment, current)
			current.children[segment] = child
		}

		current = child
	}

	return current, nil
}

// Resolve walks the absolute path without creating any nodes.
// Returns ErrInvalidPath for malformed paths and ErrNotExist when any
// segment is missing.
func (t *Tree) Resolve(path string) (*Node, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	current := t.root
	for _, segment := range segments {
		child, exists := current.children[segment]
		if !exists {
			return nil, data.ErrNotExist
		}

		current = child
	}

	return current, nil
}

// AttachFile creates a file node named name under parent, holding rec.
// An existing child of the same name is overwritten (last write wins).
func (t *Tree) AttachFile(parent *Node, name string, rec *data.FileRecord) *Node {
	node := newFile(name, rec, parent)
	parent.children[name] = node

	return node
}

// Detach removes node from its parent's children mapping, keyed by the
// node's own name, and clears the back-reference. Detaching a node whose
// parent is already gone is a no-op.
func (t *Tree) Detach(node *Node) {
	parent, ok := node.Parent()
	if !ok {
		return
	}

	// Only remove the mapping if it still points at this node; the slot
	// may have been overwritten by a later attach under the same name.
	if current, exists := parent.children[node.Name]; exists && current == node {
		delete(parent.children, node.Name)
	}

	node.parent = nil
}

// splitPath validates an absolute path and breaks it into segments.
// Empty segments from leading or duplicated separators are skipped,
// so "//home///u1" walks the same nodes as "/home/u1".
func splitPath(path string) ([]string, error) {
	if len(path) == 0 || !strings.HasPrefix(path, Separator) {
		return nil, data.ErrInvalidPath
	}

	parts := strings.Split(path, Separator)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}

		segments = append(segments, part)
	}

	return segments, nil
}
