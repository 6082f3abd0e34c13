package navigation

import (
	"fmt"
	"strings"
)

// Warning is a finding that does not make the document invalid.
type Warning struct {
	Position string
	Message  string
}

func (w Warning) String() string {
	return w.Position + ": " + w.Message
}

// Duplicate is a path listed by more than one node.
type Duplicate struct {
	Path        string
	Occurrences []Entry
}

// Duplicates returns every repeated path, ordered by first appearance.
func (t Tree) Duplicates(root string) []Duplicate {
	var order []string
	seen := map[string][]Entry{}
	_ = t.Walk(root, func(e Entry) error {
		p := e.Node.Path
		if p == "" {
			return nil
		}
		if _, ok := seen[p]; !ok {
			order = append(order, p)
		}
		seen[p] = append(seen[p], e)
		return nil
	})

	var out []Duplicate
	for _, p := range order {
		if len(seen[p]) > 1 {
			out = append(out, Duplicate{Path: p, Occurrences: seen[p]})
		}
	}
	return out
}

// Lint reports repeated paths, collapsible leaves and absolute paths.
func (t Tree) Lint(root string) []Warning {
	var out []Warning
	_ = t.Walk(root, func(e Entry) error {
		n := e.Node
		if n.Collapsible && !n.IsGroup() {
			out = append(out, Warning{e.Position, fmt.Sprintf("%q is collapsible but has no children", e.Breadcrumb())})
		}
		if strings.HasPrefix(n.Path, "/") {
			out = append(out, Warning{e.Position, fmt.Sprintf("path %q should be relative to srcDir", n.Path)})
		}
		return nil
	})

	for _, d := range t.Duplicates(root) {
		first := d.Occurrences[0]
		for _, e := range d.Occurrences[1:] {
			out = append(out, Warning{e.Position, fmt.Sprintf("path %q already listed as %q (%s)", d.Path, first.Breadcrumb(), first.Position)})
		}
	}
	return out
}
