package navigation

import (
	"fmt"

	"github.com/ignisVeneficus/sitecfg/config/validate"
)

// Validate checks that every node has a title and is either a leaf or a
// group. Duplicate paths and unknown icons are accepted.
func (t Tree) Validate(v *validate.SchemaError, path string) {
	_ = t.Walk(path, func(e Entry) error {
		n := e.Node
		validate.RequireString(v, e.Position+"/title", n.Title)
		if n.Path == "" && len(n.Children) == 0 {
			validate.Reject(v, e.Position, n.Label(),
				fmt.Errorf("node %q has neither a path nor children", e.Breadcrumb()))
		}
		return nil
	})
}
