package site

import (
	"errors"
	"path/filepath"

	"github.com/ignisVeneficus/sitecfg/config/validate"
)

func (s *SiteConfig) Validate(v *validate.SchemaError, path string) {
	validate.RequireString(v, path+"siteTitle", s.Title)
	src := validate.RequireString(v, path+"srcDir", s.SrcDir)
	out := validate.RequireString(v, path+"outputDir", s.OutputDir)

	if src && out && filepath.Clean(s.SrcDir) == filepath.Clean(s.OutputDir) {
		validate.Reject(v, path+"outputDir", map[string]string{
			"srcDir":    s.SrcDir,
			"outputDir": s.OutputDir,
		}, errors.New("srcDir and outputDir must differ"))
	}

	validate.LogConfigOK(path+"basePath", s.BasePath)
	validate.CheckURL(v, path+"siteUrl", s.SiteURL)
}

// ValidateDirs checks that SrcDir exists, relative to root.
func (s *SiteConfig) ValidateDirs(v *validate.SchemaError, path string, root string) {
	dir := s.SrcDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	validate.CheckDir(path+"srcDir", dir, true, v)
}
