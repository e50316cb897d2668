package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd wires the app and applies overrides before any command runs.
func newRootCmd(overrides ...func(*app)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "deck",
		Short:         "Present the Monster OOP Academy slide deck in your terminal",
		Long:          "deck presents an ordered deck of teaching slides in the terminal: navigate with the arrow keys, jump through the module menu, or render single slides for scripts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	for _, override := range overrides {
		override(app)
	}

	rootCmd.PersistentFlags().StringVar(&app.deckPathFlag, "deck", "", "Path to a deck TOML file (default: built-in deck)")
	rootCmd.PersistentFlags().StringVar(&app.localeFlag, "locale", "", "UI language (en|ro)")
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.closeLog()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPresentCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
