package cli

import (
	"fmt"

	"github.com/sandeepkv93/pomod/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			data, err := cfg.Encode()
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "# Merged configuration (defaults + file + env + flags)")
			fmt.Fprint(cmd.OutOrStdout(), data)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			path := opts.configPath
			if path == "" {
				path = config.DefaultPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	}

	configCmd.AddCommand(pathCmd)
	return configCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pomod %s\n", version)
		},
	}
}
