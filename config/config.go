package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ignisVeneficus/sitecfg/config/navigation"
	"github.com/ignisVeneficus/sitecfg/config/presentation"
	"github.com/ignisVeneficus/sitecfg/config/site"
	"github.com/ignisVeneficus/sitecfg/config/validate"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX = "SITECFG"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var Formats = []Format{FormatYAML, FormatJSON}

// Config is the site configuration document, read by the documentation
// generator at build start.
type Config struct {
	site.SiteConfig `yaml:",inline"`

	Search          bool                       `yaml:"search" json:"search"`
	Sidebar         presentation.SidebarConfig `yaml:"sidebar" json:"sidebar"`
	Theme           presentation.ThemeConfig   `yaml:"theme" json:"theme"`
	AutoTitleFromH1 bool                       `yaml:"autoTitleFromH1" json:"autoTitleFromH1"`
	CopyCode        bool                       `yaml:"copyCode" json:"copyCode"`
	Navigation      navigation.Tree            `yaml:"navigation" json:"navigation"`

	Warnings []navigation.Warning `yaml:"-" json:"-"`
}

// Default is the document with every optional field at its default.
func Default() Config {
	return Config{
		SiteConfig:      site.Defaults(),
		Search:          false,
		Sidebar:         presentation.DefaultSidebar(),
		Theme:           presentation.DefaultTheme(),
		AutoTitleFromH1: true,
		CopyCode:        true,
		Navigation:      navigation.Tree{},
	}
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

func Load(path string) (*Config, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return LoadBytes(data, format)
}

// LoadBytes decodes, defaults, normalizes and validates a document.
// Every schema violation is reported in a single *validate.SchemaError.
func LoadBytes(data []byte, format Format) (*Config, error) {
	doc, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	var verr validate.SchemaError
	cfg := doc.resolve(&verr)

	if err := cfg.TransformBeforeValidation(); err != nil {
		return nil, err
	}
	cfg.validate(&verr)
	if verr.HasErrors() {
		return nil, &verr
	}
	if err := cfg.TransformAfterValidation(); err != nil {
		return nil, err
	}

	writeOutNavigationInfo(cfg)
	log.Logger.Info().Str("site", cfg.Title).Msg("Configuration loaded")
	return cfg, nil
}

func decode(data []byte, format Format) (*document, error) {
	var doc document
	var root yaml.Node
	var verr validate.SchemaError

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, decodeError(err)
		}
		checkTypes(&root, &verr)
		if verr.HasErrors() {
			return nil, &verr
		}
		if len(root.Content) == 0 {
			return &doc, nil
		}
		if err := root.Decode(&doc); err != nil {
			return nil, decodeError(err)
		}
	case FormatJSON:
		// JSON is read as YAML first so type errors carry the same paths
		// in both formats; documents YAML cannot parse skip the check.
		if yaml.Unmarshal(data, &root) == nil {
			checkTypes(&root, &verr)
			if verr.HasErrors() {
				return nil, &verr
			}
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, decodeError(err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	return &doc, nil
}

// decodeError turns parser and primitive type failures into a SchemaError.
func decodeError(err error) error {
	var verr validate.SchemaError
	var yerr *yaml.TypeError
	var jerr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &yerr):
		for _, msg := range yerr.Errors {
			verr.Add(validate.NewFieldError("", nil, errors.New(msg)))
		}
	case errors.As(err, &jerr):
		verr.Add(validate.NewFieldError(strings.ReplaceAll(jerr.Field, ".", "/"), jerr.Value,
			fmt.Errorf("cannot unmarshal %s into %s", jerr.Value, jerr.Type)))
	default:
		verr.Add(validate.NewFieldError("", nil, err))
	}
	log.Logger.Error().Err(&verr).Msg("invalid configuration document")
	return &verr
}
