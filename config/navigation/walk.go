package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// SkipChildren returned from a WalkFunc skips the node's subtree.
var SkipChildren = errors.New("skip children")

// Entry is a node together with where it sits in the tree.
type Entry struct {
	Node     *Node
	Position string   // e.g. navigation[4]/children[9]
	Trail    []string // ancestor titles, root first
	Depth    int      // 1 for root level nodes
}

// Breadcrumb joins the trail and the node title.
func (e Entry) Breadcrumb() string {
	return strings.Join(append(append([]string(nil), e.Trail...), e.Node.Label()), " > ")
}

type WalkFunc func(Entry) error

// Walk visits every node depth first, parents before children,
// siblings in listed order.
func (t Tree) Walk(root string, fn WalkFunc) error {
	return t.walk(root, nil, 1, fn)
}

func (t Tree) walk(base string, trail []string, depth int, fn WalkFunc) error {
	for i := range t {
		n := &t[i]
		pos := fmt.Sprintf("%s[%d]", base, i)
		err := fn(Entry{
			Node:     n,
			Position: pos,
			Trail:    append([]string(nil), trail...),
			Depth:    depth,
		})
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if len(n.Children) > 0 {
			if err := n.Children.walk(pos+"/children", append(trail, n.Label()), depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Leaves lists every node with a path and no children.
func (t Tree) Leaves(root string) []Entry {
	var out []Entry
	_ = t.Walk(root, func(e Entry) error {
		if e.Node.IsLeaf() {
			out = append(out, e)
		}
		return nil
	})
	return out
}

// Find returns the first node (in walk order) whose path equals path.
func (t Tree) Find(path string) (*Node, bool) {
	var found *Node
	_ = t.Walk("", func(e Entry) error {
		if found == nil && e.Node.Path == path {
			found = e.Node
		}
		return nil
	})
	return found, found != nil
}

// Depth is the number of levels in the tree; 0 for an empty tree.
func (t Tree) Depth() int {
	max := 0
	_ = t.Walk("", func(e Entry) error {
		if e.Depth > max {
			max = e.Depth
		}
		return nil
	})
	return max
}

// Count returns the number of nodes at every level.
func (t Tree) Count() int {
	c := 0
	_ = t.Walk("", func(Entry) error {
		c++
		return nil
	})
	return c
}
