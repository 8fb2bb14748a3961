package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/flexnote/pkg/core"
)

var (
	listJSON bool
	listYAML bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the blocks of the document",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := openSession(nil)
		if err != nil {
			fatal("Error opening store", err)
		}
		defer session.Close()

		blocks := session.Editor.Blocks()
		out := cmd.OutOrStdout()

		switch {
		case listJSON:
			data, err := json.MarshalIndent(blocks, "", "  ")
			if err != nil {
				fatalClose(session, "Error marshaling JSON", err)
			}
			fmt.Fprintln(out, string(data))
		case listYAML:
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(blocks); err != nil {
				fatalClose(session, "Error marshaling YAML", err)
			}
			enc.Close()
		default:
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, b := range blocks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, describeType(b), b.Content)
			}
			w.Flush()
		}
	},
}

// describeType renders the type column, e.g. "h2" or "todo [x]".
func describeType(b core.Block) string {
	switch b.Type {
	case core.BlockHeading:
		return fmt.Sprintf("h%d", b.Level)
	case core.BlockTodo:
		if b.IsChecked() {
			return "todo [x]"
		}
		return "todo [ ]"
	default:
		return string(b.Type)
	}
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output as YAML")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(listCmd)
}

