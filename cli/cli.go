package cli

import (
	"fmt"
	"path/filepath"

	"github.com/ignisVeneficus/sitecfg/config"
	"github.com/ignisVeneficus/sitecfg/logging"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	envFile    string
	checkDirs  bool
	env        config.Environment
}

func Run(args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func NewRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "sitecfg",
		Short: "Validate and inspect documentation site configuration",
		Long: `sitecfg loads a documentation site configuration (site metadata, theme
and navigation tree), validates it and prints what a static site generator
would see.

Environment variables:
  SITECFG_ENV          development or production (default: production)
  SITECFG_CONFIG       configuration file (default: site.yaml)
  SITECFG_LOG_CONFIG   zeroconfig YAML file for logging
  SITECFG_LOG_LEVEL    log level when no log config is given (default: info)
  SITECFG_LOG_FILE     also write JSON logs into this file (rotated)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.configPath, "config", "c", "", "configuration file (overrides SITECFG_CONFIG)")
	flags.StringVar(&o.envFile, "env-file", "", "load environment from this file (default: .env if present)")
	flags.BoolVar(&o.checkDirs, "check-dirs", false, "also require srcDir to exist next to the configuration file")

	cmd.AddCommand(validateCmd(o))
	cmd.AddCommand(showCmd(o))
	cmd.AddCommand(urlsCmd(o))
	cmd.AddCommand(lintCmd(o))
	cmd.AddCommand(treeCmd(o))
	cmd.AddCommand(hashCmd(o))
	cmd.AddCommand(versionCmd())

	return cmd
}

func (o *options) setup() error {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	env, err := config.LoadEnvironment()
	if err != nil {
		return err
	}
	o.env = env
	if o.configPath == "" {
		o.configPath = env.ConfigPath
	}
	return logging.LoadLogging(logging.Options{
		ConfigPath: env.LogConfig,
		Level:      env.LogLevel,
		File:       env.LogFile,
	})
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.checkDirs {
		if err := cfg.ValidateDirs(filepath.Dir(o.configPath)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sitecfg version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
