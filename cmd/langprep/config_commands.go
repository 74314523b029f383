package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"langprep/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			var err error
			if target == "" {
				target, err = config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			fmt.Fprintln(out, renderStatusLine("Config path", statusInfo, ctx.configPath, colorize))
			if !ctx.configSeen {
				fmt.Fprintln(out, renderStatusLine("Config file", statusWarn, "not found; defaults were used", colorize))
			}
			fmt.Fprintln(out, renderStatusLine("Logging", statusInfo, fmt.Sprintf("%s/%s", cfg.Logging.Format, cfg.Logging.Level), colorize))
			fmt.Fprintln(out, renderStatusLine("Pipeline", statusInfo, describePipeline(cfg.Preprocess), colorize))
			fmt.Fprintln(out, renderStatusLine("Configuration", statusOK, "valid", colorize))
			return nil
		},
	}
}

func describePipeline(p config.Preprocess) string {
	steps := make([]string, 0, 5)
	add := func(enabled bool, name string) {
		if enabled {
			steps = append(steps, name)
		}
	}
	add(p.ScrubURLs, "scrub-urls")
	add(p.ScrubEmails, "scrub-emails")
	steps = append(steps, "decode")
	add(p.ScriptBias, "script-bias")
	add(p.Normalize, "normalize")
	if p.Normalize && p.WidthFold {
		steps = append(steps, "width-fold")
	}
	return strings.Join(steps, " → ")
}
