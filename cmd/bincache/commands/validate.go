package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bincache/internal/adapters/config" //nolint:depguard // Flag parsing shares the config validation
	"go.trai.ch/bincache/internal/adapters/report" //nolint:depguard // Output rendering lives with the CLI
	"go.trai.ch/bincache/internal/app"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report which prebuilt pods hit and which must be rebuilt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := validateOptions(cmd)
			if err != nil {
				return err
			}

			rep, err := c.app.Validate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			format := report.FormatText
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				format = report.FormatJSON
			}
			return report.NewWriter(cmd.OutOrStdout()).Write(rep, format)
		},
	}
	cmd.Flags().StringP("dir", "C", ".", "Directory to start the bincache.yaml lookup from")
	cmd.Flags().StringP("mode", "m", "", "Validation mode: metadata or manifest (overrides the config file)")
	cmd.Flags().Bool("dev-pods-enabled", false, "Keep development pods eligible for cache hits and propagated misses")
	cmd.Flags().StringSlice("ignore", nil, "Pods whose misses never propagate to their dependents")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	return cmd
}

func validateOptions(cmd *cobra.Command) (app.ValidateOptions, error) {
	var opts app.ValidateOptions

	opts.Cwd, _ = cmd.Flags().GetString("dir")

	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		parsed, err := config.ParseMode(mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = parsed
	}

	if cmd.Flags().Changed("dev-pods-enabled") {
		enabled, _ := cmd.Flags().GetBool("dev-pods-enabled")
		opts.DevPodsEnabled = &enabled
	}

	opts.IgnoredPods, _ = cmd.Flags().GetStringSlice("ignore")
	return opts, nil
}
