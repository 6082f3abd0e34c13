package config

import (
	"github.com/ignisVeneficus/sitecfg/config/validate"
)

// Validate checks an already built Config, e.g. one assembled in code.
func (c *Config) Validate() error {
	var verr validate.SchemaError
	c.validate(&verr)
	return verr.Err()
}

func (c *Config) validate(v *validate.SchemaError) {
	c.SiteConfig.Validate(v, "")
	validate.LogConfigOK("search", c.Search)
	c.Sidebar.Validate(v, "sidebar")
	c.Theme.Validate(v, "theme")
	validate.LogConfigOK("autoTitleFromH1", c.AutoTitleFromH1)
	validate.LogConfigOK("copyCode", c.CopyCode)
	c.Navigation.Validate(v, "navigation")
}

// ValidateDirs checks the filesystem side: srcDir must exist below root.
func (c *Config) ValidateDirs(root string) error {
	var verr validate.SchemaError
	c.SiteConfig.ValidateDirs(&verr, "", root)
	return verr.Err()
}
