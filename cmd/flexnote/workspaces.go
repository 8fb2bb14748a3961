package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/flexnote/pkg/core"
)

var workspacesJSON bool

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Show the workspace and page tree a session starts with",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tree := core.NewTree(core.SeedWorkspaces())
		out := cmd.OutOrStdout()

		if workspacesJSON {
			data, err := json.MarshalIndent(tree.Workspaces(), "", "  ")
			if err != nil {
				fatal("Error marshaling JSON", err)
			}
			fmt.Fprintln(out, string(data))
			return
		}

		for _, w := range tree.Workspaces() {
			marker := " "
			if w.Name == tree.CurrentWorkspaceName() {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, w.Name)
			for _, p := range w.Pages {
				pageMarker := " "
				if w.Name == tree.CurrentWorkspaceName() && p.ID == tree.CurrentPageID() {
					pageMarker = "*"
				}
				fmt.Fprintf(out, "  %s %s %s\n", pageMarker, p.Icon, p.Name)
			}
		}
	},
}

func init() {
	workspacesCmd.Flags().BoolVar(&workspacesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(workspacesCmd)
}
