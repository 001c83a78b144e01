package main

import (
	"github.com/Veraticus/newslens/internal/tui"
	"github.com/Veraticus/newslens/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}
			defer b.Close()

			return tui.Run(cmd.Context(),
				tui.WithAnalyzer(b.engine),
				tui.WithTheme(themes.GetTheme(b.cfg.UI.Theme)),
			)
		},
	}

	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}
