package config

func (c *Config) TransformBeforeValidation() error {
	if err := c.SiteConfig.TransformBeforeValidation(); err != nil {
		return err
	}
	if err := c.Theme.TransformBeforeValidation(); err != nil {
		return err
	}
	c.Navigation.Normalize()
	return nil
}

func (c *Config) TransformAfterValidation() error {
	c.Warnings = c.Navigation.Lint("navigation")
	return nil
}
