package site

import "strings"

func (s *SiteConfig) TransformBeforeValidation() error {
	s.Title = strings.TrimSpace(s.Title)
	s.SrcDir = strings.TrimSpace(s.SrcDir)
	s.OutputDir = strings.TrimSpace(s.OutputDir)
	s.BasePath = NormalizeBasePath(s.BasePath)
	s.SiteURL = strings.TrimRight(strings.TrimSpace(s.SiteURL), "/")
	return nil
}
