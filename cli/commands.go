package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ignisVeneficus/sitecfg/config"
	"github.com/ignisVeneficus/sitecfg/config/navigation"
	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func validateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d navigation entries, %d pages, %d warnings)\n",
				o.configPath, cfg.Navigation.Count(), len(cfg.Navigation.Leaves("")), len(cfg.Warnings))
			return nil
		},
	}
}

func showCmd(o *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration with every default filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.Format(strings.ToLower(format))
			cfg, err := o.load()
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatYAML), "output format: yaml or json")
	return cmd
}

func urlsCmd(o *options) *cobra.Command {
	var (
		canonical bool
		sorted    bool
		locale    string
	)
	cmd := &cobra.Command{
		Use:   "urls",
		Short: "List the URL of every page in the navigation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			leaves := cfg.Navigation.Leaves("navigation")
			if sorted {
				sortByTitle(leaves, locale)
			}
			out := cmd.OutOrStdout()
			for _, e := range leaves {
				url := cfg.Resolve(e.Node.Path)
				if canonical {
					url = cfg.CanonicalURL(e.Node.Path)
				}
				fmt.Fprintf(out, "%s\t%s\n", url, e.Breadcrumb())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&canonical, "canonical", false, "print absolute URLs built from siteUrl")
	cmd.Flags().BoolVar(&sorted, "sort", false, "sort by page title instead of navigation order")
	cmd.Flags().StringVar(&locale, "locale", "en", "collation locale used by --sort")
	return cmd
}

func sortByTitle(entries []navigation.Entry, locale string) {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	coll := collate.New(tag)

	sort.SliceStable(entries, func(i, j int) bool {
		return coll.CompareString(entries[i].Node.Title, entries[j].Node.Title) < 0
	})
}

func lintCmd(o *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report suspicious but valid navigation entries",
		Long: `Report navigation entries that load fine but are probably mistakes:
paths listed more than once, collapsible entries without children and
absolute content paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range cfg.Warnings {
				fmt.Fprintln(out, w.String())
			}
			if strict && len(cfg.Warnings) > 0 {
				return fmt.Errorf("%d lint warning(s)", len(cfg.Warnings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when there are warnings")
	return cmd
}

func treeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the navigation tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return cfg.Navigation.Walk("navigation", func(e navigation.Entry) error {
				line := strings.Repeat("  ", e.Depth-1) + e.Node.Title + " #" + e.Node.Slug()
				if e.Node.Path != "" {
					line += " -> " + cfg.Resolve(e.Node.Path)
				}
				_, err := fmt.Fprintln(out, line)
				return err
			})
		},
	}
}

func hashCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Print a fingerprint of the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			sum, err := config.Fingerprint(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}
