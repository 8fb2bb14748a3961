package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the stored theme preference",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"dark", "light", "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		session, err := openSession(printNotifier(cmd))
		if err != nil {
			fatal("Error opening store", err)
		}
		defer session.Close()

		ctx := context.Background()
		dark := session.DarkMode(ctx, false)

		if len(args) == 1 {
			switch args[0] {
			case "toggle":
				session.ToggleDarkMode(ctx, dark)
				return
			case "dark":
				dark = true
			case "light":
				dark = false
			}
			if err := session.SetDarkMode(ctx, dark); err != nil {
				fatalClose(session, "Error saving theme", err)
			}
		}

		if dark {
			fmt.Fprintln(cmd.OutOrStdout(), "dark")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "light")
		}
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
