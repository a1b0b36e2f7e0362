package cli

import (
	"fmt"

	"github.com/Justice-Caban/QuickQuotes/internal/color"
	"github.com/Justice-Caban/QuickQuotes/internal/palette"
	"github.com/Justice-Caban/QuickQuotes/internal/theme"
	"github.com/spf13/cobra"
)

func newThemeCmd(a *app) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Derive palettes and manage the theme",
		Long:  "Derive color palettes from a base color and switch between light, dark and custom themes.",
	}

	themeCmd.AddCommand(
		newThemeDeriveCmd(),
		newThemeCSSCmd(),
		newThemeSetCmd(a),
		newThemeShowCmd(a),
	)

	return themeCmd
}

func newThemeDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "derive <hex>",
		Short:   "Print the palette derived from a color",
		Example: "  quickquotes theme derive '#6366f1'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.DeriveHex(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "base: %s\n", p.Base)
			for _, v := range p.Vars() {
				fmt.Fprintf(out, "%s: %s\n", v.Key, v.Value)
			}
			return nil
		},
	}
}

func newThemeCSSCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "css <hex>",
		Short:   "Print the palette as a CSS :root block",
		Example: "  quickquotes theme css '#6366f1' > theme.css",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := color.ParseHex(args[0]); err != nil {
				return err
			}

			store := theme.NewVarStore()
			theme.NewController(store, theme.Options{Mode: theme.ModeCustom, CustomColor: args[0]})

			fmt.Fprint(cmd.OutOrStdout(), theme.CSS(store))
			return nil
		},
	}
}

func newThemeSetCmd(a *app) *cobra.Command {
	var hex string

	cmd := &cobra.Command{
		Use:   "set <light|dark|custom>",
		Short: "Set and save the theme mode",
		Example: `  quickquotes theme set dark
  quickquotes theme set custom --color '#10b981'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return err
			}

			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			ctrl := a.newController(st)
			if hex != "" {
				if err := ctrl.SetCustomColor(hex); err != nil {
					return err
				}
			}
			if err := ctrl.SelectMode(mode); err != nil {
				return err
			}
			a.saveTheme(st, ctrl.Preference())

			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode.Title())
			if mode == theme.ModeCustom {
				fmt.Fprintf(cmd.OutOrStdout(), "Custom color: %s\n", ctrl.CurrentCustomColor())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hex, "color", "", "custom color as #rrggbb")
	return cmd
}

func newThemeShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			pref := a.loadPreference(st)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode: %s\n", pref.Mode)
			fmt.Fprintf(out, "custom color: %s\n", pref.CustomColor)
			fmt.Fprintf(out, "reset target: %s\n", pref.PreviousMode)
			return nil
		},
	}
}
