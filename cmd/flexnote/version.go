package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/flexnote"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of flexnote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flexnote version %s\n", strings.TrimSpace(flexnote.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
