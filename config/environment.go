package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type EnvMode string

const (
	EnvDevelopment EnvMode = "development"
	EnvProduction  EnvMode = "production"

	DefaultConfigPath = "site.yaml"
)

// Environment is the tool's own settings, read from SITECFG_* variables.
type Environment struct {
	Mode       EnvMode `envconfig:"ENV" default:"production"`
	ConfigPath string  `envconfig:"CONFIG" default:"site.yaml"`
	LogConfig  string  `envconfig:"LOG_CONFIG"`
	LogLevel   string  `envconfig:"LOG_LEVEL"`
	LogFile    string  `envconfig:"LOG_FILE"`
}

func LoadEnvironment() (Environment, error) {
	var env Environment
	if err := envconfig.Process(ENV_PREFIX, &env); err != nil {
		return Environment{}, fmt.Errorf("process environment: %w", err)
	}

	switch env.Mode {
	case EnvDevelopment, EnvProduction:
	default:
		return Environment{}, fmt.Errorf("invalid %s_ENV: %s", ENV_PREFIX, env.Mode)
	}

	if env.LogLevel == "" {
		env.LogLevel = "info"
		if env.Mode == EnvDevelopment {
			env.LogLevel = "debug"
		}
	}
	return env, nil
}

// LoadDotEnv loads variables from a .env file. A missing file is not an
// error; variables already set in the environment win.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}
