package config

import (
	"github.com/ignisVeneficus/sitecfg/config/navigation"
	"github.com/ignisVeneficus/sitecfg/config/presentation"
	"github.com/ignisVeneficus/sitecfg/config/validate"
	"github.com/ignisVeneficus/sitecfg/utils"
)

// document mirrors Config with pointers, so absent keys can be told apart
// from explicit zero values.
type document struct {
	SiteTitle       *string          `yaml:"siteTitle" json:"siteTitle"`
	SrcDir          *string          `yaml:"srcDir" json:"srcDir"`
	OutputDir       *string          `yaml:"outputDir" json:"outputDir"`
	BasePath        *string          `yaml:"basePath" json:"basePath"`
	SiteURL         *string          `yaml:"siteUrl" json:"siteUrl"`
	Search          *bool            `yaml:"search" json:"search"`
	Sidebar         *sidebarDocument `yaml:"sidebar" json:"sidebar"`
	Theme           *themeDocument   `yaml:"theme" json:"theme"`
	AutoTitleFromH1 *bool            `yaml:"autoTitleFromH1" json:"autoTitleFromH1"`
	CopyCode        *bool            `yaml:"copyCode" json:"copyCode"`
	Navigation      *navigation.Tree `yaml:"navigation" json:"navigation"`
}

type sidebarDocument struct {
	Collapsible      *bool `yaml:"collapsible" json:"collapsible"`
	DefaultCollapsed *bool `yaml:"defaultCollapsed" json:"defaultCollapsed"`
}

type themeDocument struct {
	Name             *string            `yaml:"name" json:"name"`
	DefaultMode      *presentation.Mode `yaml:"defaultMode" json:"defaultMode"`
	EnableModeToggle *bool              `yaml:"enableModeToggle" json:"enableModeToggle"`
	PositionMode     *string            `yaml:"positionMode" json:"positionMode"`
}

// resolve applies defaults. A missing siteTitle is caught later by
// validation; a missing navigation key is reported here.
func (d *document) resolve(v *validate.SchemaError) *Config {
	cfg := Default()

	cfg.Title = utils.FromStringPtr(d.SiteTitle)
	cfg.SrcDir = utils.ValueOr(d.SrcDir, cfg.SrcDir)
	cfg.OutputDir = utils.ValueOr(d.OutputDir, cfg.OutputDir)
	cfg.BasePath = utils.ValueOr(d.BasePath, cfg.BasePath)
	cfg.SiteURL = utils.ValueOr(d.SiteURL, cfg.SiteURL)
	cfg.Search = utils.ValueOr(d.Search, cfg.Search)
	cfg.AutoTitleFromH1 = utils.ValueOr(d.AutoTitleFromH1, cfg.AutoTitleFromH1)
	cfg.CopyCode = utils.ValueOr(d.CopyCode, cfg.CopyCode)

	if s := d.Sidebar; s != nil {
		cfg.Sidebar.Collapsible = utils.ValueOr(s.Collapsible, cfg.Sidebar.Collapsible)
		cfg.Sidebar.DefaultCollapsed = utils.ValueOr(s.DefaultCollapsed, cfg.Sidebar.DefaultCollapsed)
	}
	if t := d.Theme; t != nil {
		cfg.Theme.Name = utils.ValueOr(t.Name, cfg.Theme.Name)
		cfg.Theme.DefaultMode = utils.ValueOr(t.DefaultMode, cfg.Theme.DefaultMode)
		cfg.Theme.EnableModeToggle = utils.ValueOr(t.EnableModeToggle, cfg.Theme.EnableModeToggle)
		cfg.Theme.PositionMode = utils.ValueOr(t.PositionMode, cfg.Theme.PositionMode)
	}

	if d.Navigation == nil {
		validate.Reject(v, "navigation", nil, validate.ErrRequired)
	} else {
		cfg.Navigation = *d.Navigation
		if cfg.Navigation == nil {
			cfg.Navigation = navigation.Tree{}
		}
	}
	return &cfg
}
