package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ignisVeneficus/sitecfg/utils"
	"gopkg.in/yaml.v3"
)

// Marshal writes the full document, defaults included.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
}

// Fingerprint identifies the effective configuration; two documents that
// load to the same Config share a fingerprint.
func Fingerprint(cfg *Config) (string, error) {
	return utils.HashDataYAML(cfg)
}
