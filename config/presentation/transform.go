package presentation

import "strings"

func (t *ThemeConfig) TransformBeforeValidation() error {
	t.Name = strings.TrimSpace(t.Name)
	t.DefaultMode = Mode(strings.TrimSpace(string(t.DefaultMode)))
	t.PositionMode = strings.TrimSpace(t.PositionMode)
	return nil
}
