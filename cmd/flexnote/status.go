package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

type statusReport struct {
	Session any `json:"session"`
	Storage any `json:"storage,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the session and storage state as JSON",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := openSession(nil)
		if err != nil {
			fatal("Error opening store", err)
		}
		defer session.Close()

		report := statusReport{Session: session.State()}
		if s, ok := session.Storage().(introspection.Introspectable); ok {
			report.Storage = s.State()
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fatalClose(session, "Error marshaling JSON", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
