package navigation

import (
	"strings"

	"github.com/gosimple/slug"
	"github.com/ignisVeneficus/sitecfg/logging"
	"github.com/rs/zerolog"
)

// RootPath is the path of the site's landing page.
const RootPath = "."

// Node is one sidebar entry. A leaf points at a content path relative to
// srcDir, a group only holds Children (its Path is optional).
type Node struct {
	Title       string `yaml:"title" json:"title"`
	Path        string `yaml:"path,omitempty" json:"path,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Collapsible bool   `yaml:"collapsible,omitempty" json:"collapsible,omitempty"`
	Children    Tree   `yaml:"children,omitempty" json:"children,omitempty"`
}

// Tree is an ordered list of nodes; order is render order.
type Tree []Node

func (n *Node) IsGroup() bool {
	return len(n.Children) > 0
}

func (n *Node) IsLeaf() bool {
	return n.Path != "" && len(n.Children) == 0
}

// Label names the node in messages: its title, else its path.
func (n *Node) Label() string {
	if n.Title != "" {
		return n.Title
	}
	if n.Path != "" {
		return n.Path
	}
	return "<untitled>"
}

// Slug is a stable anchor id derived from the title.
func (n *Node) Slug() string {
	return slug.Make(n.Title)
}

func (n *Node) MarshalZerologObject(e *zerolog.Event) {
	e.Str("title", n.Title)
	logging.StrIf(e, "path", n.Path)
	logging.StrIf(e, "icon", n.Icon)
	logging.BoolIf(e, "collapsible", n.Collapsible)
	if n.IsGroup() {
		e.Int("children", len(n.Children))
	}
}

// Normalize trims every string field and drops empty child lists, in place.
func (t Tree) Normalize() {
	for i := range t {
		n := &t[i]
		n.Title = strings.TrimSpace(n.Title)
		n.Path = strings.TrimSpace(n.Path)
		n.Icon = strings.TrimSpace(n.Icon)
		if len(n.Children) == 0 {
			n.Children = nil
			continue
		}
		n.Children.Normalize()
	}
}
