package presentation

import (
	"github.com/ignisVeneficus/sitecfg/config/validate"
	"github.com/rs/zerolog/log"
)

func (t *ThemeConfig) Validate(v *validate.SchemaError, path string) {
	validate.RequireString(v, path+"/name", t.Name)
	validate.RequireOneOf(v, path+"/defaultMode", t.DefaultMode, Modes)
	validate.LogConfigOK(path+"/enableModeToggle", t.EnableModeToggle)
	validate.RequireString(v, path+"/positionMode", t.PositionMode)
}

func (s *SidebarConfig) Validate(v *validate.SchemaError, path string) {
	validate.LogConfigOK(path+"/collapsible", s.Collapsible)
	validate.LogConfigOK(path+"/defaultCollapsed", s.DefaultCollapsed)
	if !s.Collapsible && s.DefaultCollapsed {
		log.Warn().
			Str("config", path+"/defaultCollapsed").
			Msg("ignored, sidebar is not collapsible")
	}
}
