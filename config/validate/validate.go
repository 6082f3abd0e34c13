package validate

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

// Standardized errors

var ErrRequired = errors.New("is required")

func ErrOneOf(allowed any, value any) error {
	return fmt.Errorf("must be one of %v (got %v)", allowed, value)
}

func ErrType(want string, got string) error {
	return fmt.Errorf("must be a %s (got %s)", want, got)
}

// FieldError is a single violation, keyed by its config path
// (e.g. "theme/defaultMode", "navigation[2]/children[0]").
type FieldError struct {
	Path  string
	Value any
	Err   error
}

func NewFieldError(path string, value any, err error) *FieldError {
	return &FieldError{Path: path, Value: value, Err: err}
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// SchemaError collects every violation found while loading a document.
// The zero value is ready to use.
type SchemaError struct {
	errs error
}

func (v *SchemaError) Add(err error) {
	if err != nil {
		v.errs = multierr.Append(v.errs, err)
	}
}

func (v *SchemaError) HasErrors() bool {
	return v.errs != nil
}

func (v *SchemaError) Errors() []error {
	return multierr.Errors(v.errs)
}

// Err returns v when something was collected, nil otherwise.
func (v *SchemaError) Err() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

func (v *SchemaError) Unwrap() []error {
	return v.Errors()
}

func (v *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.Errors() {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Reject logs and records a violation at path.
func Reject(v *SchemaError, path string, value any, err error) {
	LogConfigError(path, value, err)
	v.Add(NewFieldError(path, value, err))
}

func RequireString(v *SchemaError, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		Reject(v, path, value, ErrRequired)
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireOneOf[T comparable](v *SchemaError, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			LogConfigOK(path, value)
			return true
		}
	}
	Reject(v, path, value, ErrOneOf(allowed, value))
	return false
}

// CheckURL accepts an empty value (optional) or an absolute http(s) URL.
func CheckURL(v *SchemaError, path string, value string) bool {
	if value == "" {
		log.Debug().Str("config", path).Msg("url not set (optional)")
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		Reject(v, path, value, err)
		return false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		Reject(v, path, value, errors.New("must be an absolute http(s) url"))
		return false
	}
	LogConfigOK(path, value)
	return true
}

func LogConfigOK(path string, value any) {
	log.Logger.Debug().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func LogConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}

func CheckDir(pathKey string, dir string, required bool, v *SchemaError) {
	if dir == "" {
		if required {
			Reject(v, pathKey, dir, errors.New("directory must be set"))
		} else {
			log.Info().Str("config", pathKey).Msg("directory not set (optional)")
		}
		return
	}

	info, err := os.Stat(dir)
	if err != nil {
		if required {
			Reject(v, pathKey, dir, err)
		} else {
			log.Warn().Str("config", pathKey).Str("value", dir).Err(err).Msg("optional directory does not exist")
		}
		return
	}

	if !info.IsDir() {
		err := errors.New("not a directory")
		if required {
			Reject(v, pathKey, dir, err)
		} else {
			log.Warn().
				Str("config", pathKey).
				Str("value", dir).
				Msg("optional path exists but is not a directory")
		}
		return
	}

	LogConfigOK(pathKey, dir)
}
