package config

import (
	"fmt"
	"strings"

	"github.com/ignisVeneficus/sitecfg/config/validate"
	"gopkg.in/yaml.v3"
)

type kind int

const (
	kindString kind = iota
	kindBool
	kindSidebar
	kindTheme
	kindNodes
)

var (
	documentKinds = map[string]kind{
		"siteTitle":       kindString,
		"srcDir":          kindString,
		"outputDir":       kindString,
		"basePath":        kindString,
		"siteUrl":         kindString,
		"search":          kindBool,
		"sidebar":         kindSidebar,
		"theme":           kindTheme,
		"autoTitleFromH1": kindBool,
		"copyCode":        kindBool,
		"navigation":      kindNodes,
	}
	sidebarKinds = map[string]kind{
		"collapsible":      kindBool,
		"defaultCollapsed": kindBool,
	}
	themeKinds = map[string]kind{
		"name":             kindString,
		"defaultMode":      kindString,
		"enableModeToggle": kindBool,
		"positionMode":     kindString,
	}
	nodeKinds = map[string]kind{
		"title":       kindString,
		"path":        kindString,
		"icon":        kindString,
		"collapsible": kindBool,
		"children":    kindNodes,
	}
)

// checkTypes walks the parsed document and rejects values whose YAML tag
// does not match the field type. A null value counts as absent.
func checkTypes(root *yaml.Node, v *validate.SchemaError) {
	if root.Kind == 0 || root.Kind == yaml.DocumentNode && len(root.Content) == 0 {
		return
	}
	if root.Kind == yaml.DocumentNode {
		root = root.Content[0]
	}
	root = deref(root)
	if isNull(root) {
		return
	}
	if root.Kind != yaml.MappingNode {
		validate.Reject(v, "", root.Value, validate.ErrType("mapping", describe(root)))
		return
	}
	checkMapping(root, "", documentKinds, v)
}

func checkMapping(n *yaml.Node, path string, kinds map[string]kind, v *validate.SchemaError) {
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i].Value, deref(n.Content[i+1])
		k, ok := kinds[key]
		if !ok || isNull(value) {
			continue
		}
		checkValue(value, joinPath(path, key), k, v)
	}
}

func checkValue(n *yaml.Node, path string, k kind, v *validate.SchemaError) {
	switch k {
	case kindString:
		checkScalar(n, path, "!!str", "string", v)
	case kindBool:
		checkScalar(n, path, "!!bool", "boolean", v)
	case kindSidebar, kindTheme:
		if n.Kind != yaml.MappingNode {
			validate.Reject(v, path, n.Value, validate.ErrType("mapping", describe(n)))
			return
		}
		kinds := sidebarKinds
		if k == kindTheme {
			kinds = themeKinds
		}
		checkMapping(n, path, kinds, v)
	case kindNodes:
		if n.Kind != yaml.SequenceNode {
			validate.Reject(v, path, n.Value, validate.ErrType("list", describe(n)))
			return
		}
		for i, item := range n.Content {
			item = deref(item)
			pos := fmt.Sprintf("%s[%d]", path, i)
			if item.Kind != yaml.MappingNode {
				validate.Reject(v, pos, item.Value, validate.ErrType("mapping", describe(item)))
				continue
			}
			checkMapping(item, pos, nodeKinds, v)
		}
	}
}

func checkScalar(n *yaml.Node, path string, tag string, want string, v *validate.SchemaError) {
	if n.Kind == yaml.ScalarNode && n.ShortTag() == tag {
		return
	}
	validate.Reject(v, path, n.Value, validate.ErrType(want, describe(n)))
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "/" + key
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func describe(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	default:
		return strings.TrimPrefix(n.ShortTag(), "!!")
	}
}
