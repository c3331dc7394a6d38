package cli

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/pomod/internal/theme"
	"github.com/spf13/cobra"
)

func newThemeCommand(opts *options) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the resolved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeManager(cmd, opts, func(ctx context.Context, m *theme.Manager) error {
				current := m.Resolve(ctx)
				source := "system"
				if _, ok := m.Override(ctx); ok {
					source = "override"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", current.Icon(), current, source)
				return nil
			})
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip the theme and remember the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemeManager(cmd, opts, func(ctx context.Context, m *theme.Manager) error {
				m.Resolve(ctx)
				next := m.Toggle(ctx)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", next.Icon(), next)
				return nil
			})
		},
	}

	themeCmd.AddCommand(toggleCmd)
	return themeCmd
}

func withThemeManager(cmd *cobra.Command, opts *options, fn func(context.Context, *theme.Manager) error) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, theme.NewManager(store, theme.TerminalDetector(), consoleLogger(cmd, cfg)))
}
