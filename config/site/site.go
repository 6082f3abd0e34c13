package site

import (
	"strings"

	"github.com/ignisVeneficus/sitecfg/utils"
)

const (
	DefaultSrcDir    = "docs"
	DefaultOutputDir = "site"
)

// SiteConfig is the metadata block of the document.
// BasePath is the URL prefix the generated site is served under,
// SiteURL the public origin (which, for subpath hosting, already ends in BasePath).
type SiteConfig struct {
	Title     string `yaml:"siteTitle" json:"siteTitle"`
	SrcDir    string `yaml:"srcDir" json:"srcDir"`
	OutputDir string `yaml:"outputDir" json:"outputDir"`
	BasePath  string `yaml:"basePath" json:"basePath"`
	SiteURL   string `yaml:"siteUrl" json:"siteUrl"`
}

func Defaults() SiteConfig {
	return SiteConfig{
		SrcDir:    DefaultSrcDir,
		OutputDir: DefaultOutputDir,
	}
}

// Resolve joins BasePath and a content path with exactly one slash between
// them. "." and "" name the site root.
func (s SiteConfig) Resolve(contentPath string) string {
	return join(s.BasePath, contentPath)
}

// CanonicalURL is Resolve against SiteURL; it falls back to Resolve when
// no SiteURL is configured.
func (s SiteConfig) CanonicalURL(contentPath string) string {
	if s.SiteURL == "" {
		return s.Resolve(contentPath)
	}
	return join(s.SiteURL, contentPath)
}

func join(prefix string, contentPath string) string {
	prefix = strings.TrimRight(prefix, "/")
	contentPath = strings.TrimLeft(contentPath, "/")
	if contentPath == "." {
		contentPath = ""
	}
	return prefix + "/" + contentPath
}

// NormalizeBasePath gives p one leading slash and no trailing one;
// an empty or root-only prefix becomes "".
func NormalizeBasePath(p string) string {
	segs := utils.SplitPath(p)
	if len(segs) == 0 {
		return ""
	}
	return "/" + strings.Join(segs, "/")
}
