package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ignisVeneficus/sitecfg/config/presentation"
	"github.com/ignisVeneficus/sitecfg/config/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePath = "testdata/variables-contract.yaml"

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireSchemaError(t *testing.T, err error) *validate.SchemaError {
	t.Helper()
	require.Error(t, err)
	var verr *validate.SchemaError
	require.True(t, errors.As(err, &verr), "want SchemaError, got %T: %v", err, err)
	return verr
}

func fieldPaths(verr *validate.SchemaError) []string {
	var out []string
	for _, err := range verr.Errors() {
		var fe *validate.FieldError
		if errors.As(err, &fe) {
			out = append(out, fe.Path)
		}
	}
	return out
}

func TestLoad_Sample(t *testing.T) {
	cfg, err := Load(samplePath)
	require.NoError(t, err)

	assert.Equal(t, "Variables Contract", cfg.Title)
	assert.Equal(t, "docs", cfg.SrcDir)
	assert.Equal(t, "site", cfg.OutputDir)
	assert.Equal(t, "/variables-contract", cfg.BasePath)
	assert.Equal(t, "https://marklearst.github.io/variables-contract", cfg.SiteURL)
	assert.True(t, cfg.Search)
	assert.True(t, cfg.Sidebar.Collapsible)
	assert.False(t, cfg.Sidebar.DefaultCollapsed)
	assert.Equal(t, presentation.ModeDark, cfg.Theme.DefaultMode)
	assert.True(t, cfg.AutoTitleFromH1)
	assert.True(t, cfg.CopyCode)

	require.Len(t, cfg.Navigation, 15)
	assert.Equal(t, "Home", cfg.Navigation[0].Title)
	assert.Equal(t, "FAQ", cfg.Navigation[14].Title)
	assert.Equal(t, 76, cfg.Navigation.Count())
	assert.Equal(t, 3, cfg.Navigation.Depth())
	assert.Len(t, cfg.Navigation.Leaves("navigation"), 62)

	roles := cfg.Navigation[4].Children[9]
	assert.Equal(t, "Roles", roles.Title)
	assert.True(t, roles.IsGroup())
	assert.Equal(t, "governance/roles/designer", roles.Children[0].Path)

	assert.Equal(t, "/variables-contract/contract/naming", cfg.Resolve("contract/naming"))
	assert.Equal(t, "/variables-contract/", cfg.Resolve(cfg.Navigation[0].Path))
}

func TestLoad_DuplicatePathsAreWarnings(t *testing.T) {
	cfg, err := Load(samplePath)
	require.NoError(t, err)

	require.Len(t, cfg.Warnings, 3)
	assert.Equal(t, "navigation[11]/children[1]", cfg.Warnings[0].Position)
	assert.Contains(t, cfg.Warnings[0].Message, `"adapters/figma"`)
	assert.Contains(t, cfg.Warnings[0].Message, `"Tooling > Figma"`)
}

func TestLoad_RoundTrip(t *testing.T) {
	cfg, err := Load(samplePath)
	require.NoError(t, err)

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(cfg, format)
			require.NoError(t, err)

			again, err := LoadBytes(data, format)
			require.NoError(t, err)
			assert.Equal(t, cfg, again)
		})
	}
}

func TestLoad_RoundTripMinimal(t *testing.T) {
	cfg, err := LoadBytes([]byte("siteTitle: Docs\nnavigation: []\n"), FormatYAML)
	require.NoError(t, err)

	data, err := Marshal(cfg, FormatYAML)
	require.NoError(t, err)
	again, err := LoadBytes(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadBytes([]byte("siteTitle: Docs\nnavigation: []\n"), FormatYAML)
	require.NoError(t, err)

	want := Default()
	want.Title = "Docs"
	assert.Equal(t, &want, cfg)

	assert.Equal(t, "docs", cfg.SrcDir)
	assert.Equal(t, "site", cfg.OutputDir)
	assert.Equal(t, "", cfg.BasePath)
	assert.Equal(t, "", cfg.SiteURL)
	assert.False(t, cfg.Search)
	assert.True(t, cfg.Sidebar.Collapsible)
	assert.False(t, cfg.Sidebar.DefaultCollapsed)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.Equal(t, presentation.ModeLight, cfg.Theme.DefaultMode)
	assert.True(t, cfg.Theme.EnableModeToggle)
	assert.Equal(t, "top", cfg.Theme.PositionMode)
	assert.True(t, cfg.AutoTitleFromH1)
	assert.True(t, cfg.CopyCode)
	assert.NotNil(t, cfg.Navigation)
	assert.Empty(t, cfg.Navigation)
}

func TestLoad_ExplicitZeroValuesKept(t *testing.T) {
	doc := `
siteTitle: Docs
sidebar:
  collapsible: false
theme:
  enableModeToggle: false
autoTitleFromH1: false
copyCode: false
navigation: []
`
	cfg, err := LoadBytes([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.False(t, cfg.Sidebar.Collapsible)
	assert.False(t, cfg.Sidebar.DefaultCollapsed)
	assert.False(t, cfg.Theme.EnableModeToggle)
	assert.Equal(t, "default", cfg.Theme.Name, "untouched theme keys keep defaults")
	assert.False(t, cfg.AutoTitleFromH1)
	assert.False(t, cfg.CopyCode)
}

func TestLoad_Normalizes(t *testing.T) {
	doc := `
siteTitle: "  Docs  "
basePath: variables-contract/
siteUrl: https://marklearst.github.io/variables-contract/
navigation:
  - title: " Home "
    path: " . "
    children: []
`
	cfg, err := LoadBytes([]byte(doc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Docs", cfg.Title)
	assert.Equal(t, "/variables-contract", cfg.BasePath)
	assert.Equal(t, "https://marklearst.github.io/variables-contract", cfg.SiteURL)
	assert.Equal(t, "Home", cfg.Navigation[0].Title)
	assert.Equal(t, ".", cfg.Navigation[0].Path)
	assert.Nil(t, cfg.Navigation[0].Children)

	// Load rewrites the raw values, so the round trip holds from the
	// normalized document onward.
	data, err := Marshal(cfg, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "basePath: /variables-contract\n")
	again, err := LoadBytes(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad_SchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
		paths  []string
	}{
		{
			name:   "missing siteTitle",
			format: FormatYAML,
			doc:    "navigation: []\n",
			paths:  []string{"siteTitle"},
		},
		{
			name:   "missing navigation",
			format: FormatYAML,
			doc:    "siteTitle: Docs\n",
			paths:  []string{"navigation"},
		},
		{
			name:   "null navigation",
			format: FormatJSON,
			doc:    `{"siteTitle": "Docs", "navigation": null}`,
			paths:  []string{"navigation"},
		},
		{
			name:   "empty document",
			format: FormatYAML,
			doc:    "",
			paths:  []string{"navigation", "siteTitle"},
		},
		{
			name:   "unknown theme mode",
			format: FormatYAML,
			doc:    "siteTitle: Docs\ntheme:\n  defaultMode: blue\nnavigation: []\n",
			paths:  []string{"theme/defaultMode"},
		},
		{
			name:   "srcDir equals outputDir",
			format: FormatYAML,
			doc:    "siteTitle: Docs\nsrcDir: out\noutputDir: out/\nnavigation: []\n",
			paths:  []string{"outputDir"},
		},
		{
			name:   "relative siteUrl",
			format: FormatYAML,
			doc:    "siteTitle: Docs\nsiteUrl: /variables-contract\nnavigation: []\n",
			paths:  []string{"siteUrl"},
		},
		{
			name:   "node with neither path nor children",
			format: FormatYAML,
			doc:    "siteTitle: Docs\nnavigation:\n  - title: Home\n    path: .\n  - title: Introduction\n    icon: book\n    children: []\n",
			paths:  []string{"navigation[1]"},
		},
		{
			name:   "untitled node",
			format: FormatYAML,
			doc:    "siteTitle: Docs\nnavigation:\n  - path: faq\n",
			paths:  []string{"navigation[0]/title"},
		},
		{
			name:   "search is not a boolean in json",
			format: FormatJSON,
			doc:    `{"siteTitle": "Docs", "search": "yes", "navigation": []}`,
			paths:  []string{"search"},
		},
		{
			name:   "nested type error in json",
			format: FormatJSON,
			doc:    `{"siteTitle": "Docs", "theme": {"enableModeToggle": 1}, "navigation": []}`,
			paths:  []string{"theme/enableModeToggle"},
		},
		{
			name:   "numeric siteTitle",
			format: FormatYAML,
			doc:    "siteTitle: 123\nnavigation: []\n",
			paths:  []string{"siteTitle"},
		},
		{
			name:   "numeric basePath",
			format: FormatYAML,
			doc:    "siteTitle: Docs\nbasePath: 42\nnavigation: []\n",
			paths:  []string{"basePath"},
		},
		{
			name:   "boolean theme name",
			format: FormatYAML,
			doc:    "siteTitle: Docs\ntheme:\n  name: true\nnavigation: []\n",
			paths:  []string{"theme/name"},
		},
		{
			name:   "numeric node title",
			format: FormatYAML,
			doc:    "siteTitle: Docs\nnavigation:\n  - title: 2024\n    path: a\n",
			paths:  []string{"navigation[0]/title"},
		},
		{
			name:   "nested node title in json",
			format: FormatJSON,
			doc:    `{"siteTitle": "Docs", "navigation": [{"title": "A", "children": [{"title": 7, "path": "b"}]}]}`,
			paths:  []string{"navigation[0]/children[0]/title"},
		},
		{
			name:   "navigation is not a list",
			format: FormatYAML,
			doc:    "siteTitle: Docs\nnavigation: home\n",
			paths:  []string{"navigation"},
		},
		{
			name:   "theme is not a mapping",
			format: FormatYAML,
			doc:    "siteTitle: Docs\ntheme: dark\nnavigation: []\n",
			paths:  []string{"theme"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadBytes([]byte(tt.doc), tt.format)
			assert.Nil(t, cfg)
			verr := requireSchemaError(t, err)
			assert.ElementsMatch(t, tt.paths, fieldPaths(verr))
		})
	}
}

func TestLoad_NamesOffendingNode(t *testing.T) {
	doc := "siteTitle: Docs\nnavigation:\n  - title: Governance\n    children:\n      - title: Roles\n        icon: users\n"
	_, err := LoadBytes([]byte(doc), FormatYAML)
	requireSchemaError(t, err)
	assert.Contains(t, err.Error(), `navigation[0]/children[0]: node "Governance > Roles" has neither a path nor children`)
}

func TestLoad_YAMLTypeErrors(t *testing.T) {
	_, err := LoadBytes([]byte("siteTitle: Docs\nsearch: maybe\nnavigation: []\n"), FormatYAML)
	verr := requireSchemaError(t, err)
	assert.Equal(t, []string{"search"}, fieldPaths(verr))
	assert.Contains(t, verr.Error(), "search: must be a boolean (got str)")

	_, err = LoadBytes([]byte("siteTitle: [Docs\n"), FormatYAML)
	requireSchemaError(t, err)

	_, err = LoadBytes([]byte(`{"siteTitle": `), FormatJSON)
	requireSchemaError(t, err)
}

func TestLoad_TypeErrorsMatchAcrossFormats(t *testing.T) {
	yamlDoc := `
siteTitle: 1
search: "yes"
sidebar:
  collapsible: 0
navigation:
  - title: Home
    path: 2
`
	jsonDoc := `{"siteTitle": 1, "search": "yes", "sidebar": {"collapsible": 0}, "navigation": [{"title": "Home", "path": 2}]}`

	_, err := LoadBytes([]byte(yamlDoc), FormatYAML)
	fromYAML := requireSchemaError(t, err)
	_, err = LoadBytes([]byte(jsonDoc), FormatJSON)
	fromJSON := requireSchemaError(t, err)

	want := []string{"siteTitle", "search", "sidebar/collapsible", "navigation[0]/path"}
	assert.Equal(t, want, fieldPaths(fromYAML))
	assert.Equal(t, want, fieldPaths(fromJSON))
	assert.Equal(t, fromYAML.Error(), fromJSON.Error())
}

func TestLoad_NullMeansAbsent(t *testing.T) {
	cfg, err := LoadBytes([]byte("siteTitle: Docs\nsrcDir: ~\ncopyCode: null\nnavigation: []\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "docs", cfg.SrcDir)
	assert.True(t, cfg.CopyCode)
}

func TestLoad_CollectsEveryViolation(t *testing.T) {
	doc := `
theme:
  name: ""
  defaultMode: blue
navigation:
  - title: Empty
`
	_, err := LoadBytes([]byte(doc), FormatYAML)
	verr := requireSchemaError(t, err)
	assert.Equal(t, []string{"siteTitle", "theme/name", "theme/defaultMode", "navigation[0]"}, fieldPaths(verr))
}

func TestLoad_DuplicatePathsAccepted(t *testing.T) {
	doc := `
siteTitle: Docs
navigation:
  - title: Tooling
    children:
      - title: Figma
        path: adapters/figma
  - title: Adapters
    children:
      - title: Figma
        path: adapters/figma
`
	cfg, err := LoadBytes([]byte(doc), FormatYAML)
	require.NoError(t, err)
	require.Len(t, cfg.Warnings, 1)
	assert.Equal(t, "navigation[1]/children[0]", cfg.Warnings[0].Position)
}

func TestLoad_Files(t *testing.T) {
	path := writeConfig(t, "site.json", `{"siteTitle": "Docs", "basePath": "/docs", "navigation": [{"title": "FAQ", "path": "faq"}]}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/docs/faq", cfg.Resolve(cfg.Navigation[0].Path))

	_, err = Load(writeConfig(t, "site.toml", "siteTitle = 'Docs'"))
	require.Error(t, err)
	var verr *validate.SchemaError
	assert.False(t, errors.As(err, &verr), "unsupported extension is not a schema error")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"site.yaml":     FormatYAML,
		"site.YML":      FormatYAML,
		"cfg/site.json": FormatJSON,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFromPath("docmd.config.js")
	assert.Error(t, err)
}

func TestValidate_BuiltInCode(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Validate(), "title missing")

	cfg.Title = "Docs"
	assert.NoError(t, cfg.Validate())

	cfg.Theme.DefaultMode = "blue"
	verr := requireSchemaError(t, cfg.Validate())
	assert.Equal(t, []string{"theme/defaultMode"}, fieldPaths(verr))
}

func TestValidateDirs(t *testing.T) {
	root := t.TempDir()
	cfg := Default()
	cfg.Title = "Docs"

	requireSchemaError(t, cfg.ValidateDirs(root))

	require.NoError(t, os.Mkdir(filepath.Join(root, "docs"), 0o755))
	assert.NoError(t, cfg.ValidateDirs(root))
}

func TestFingerprint(t *testing.T) {
	fromYAML, err := Load(samplePath)
	require.NoError(t, err)

	data, err := Marshal(fromYAML, FormatJSON)
	require.NoError(t, err)
	fromJSON, err := LoadBytes(data, FormatJSON)
	require.NoError(t, err)

	a, err := Fingerprint(fromYAML)
	require.NoError(t, err)
	b, err := Fingerprint(fromJSON)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	fromJSON.Theme.DefaultMode = presentation.ModeLight
	c, err := Fingerprint(fromJSON)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestMarshal_UnknownFormat(t *testing.T) {
	cfg := Default()
	_, err := Marshal(&cfg, "toml")
	assert.Error(t, err)
}
