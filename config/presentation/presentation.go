package presentation

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"

	DefaultThemeName    = "default"
	DefaultPositionMode = "top"
)

var Modes = []Mode{ModeLight, ModeDark}

type ThemeConfig struct {
	Name             string `yaml:"name" json:"name"`
	DefaultMode      Mode   `yaml:"defaultMode" json:"defaultMode"`
	EnableModeToggle bool   `yaml:"enableModeToggle" json:"enableModeToggle"`
	PositionMode     string `yaml:"positionMode" json:"positionMode"`
}

type SidebarConfig struct {
	Collapsible      bool `yaml:"collapsible" json:"collapsible"`
	DefaultCollapsed bool `yaml:"defaultCollapsed" json:"defaultCollapsed"`
}

func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Name:             DefaultThemeName,
		DefaultMode:      ModeLight,
		EnableModeToggle: true,
		PositionMode:     DefaultPositionMode,
	}
}

func DefaultSidebar() SidebarConfig {
	return SidebarConfig{
		Collapsible:      true,
		DefaultCollapsed: false,
	}
}
