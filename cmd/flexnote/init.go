package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/flexnote/internal/config"
	"github.com/aretw0/flexnote/internal/platform"
)

var initConfig bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a FlexNote data root in the current directory",
	Long: `Create a .flexnote directory in the current directory. Commands run
below it use that directory as their store. With --write-config, also
write a default config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		root := filepath.Join(cwd, platform.MarkerDir)
		if err := os.MkdirAll(root, 0755); err != nil {
			fatal("Failed to create data root", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Initialized FlexNote data root in", root)

		if !initConfig {
			return
		}
		path := resolveConfigPath()
		if path == "" {
			fatal("Failed to write config", fmt.Errorf("no config location, use --config"))
		}
		if err := config.Init(path, config.Default()); err != nil {
			fatal("Failed to write config", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote config to", path)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initConfig, "write-config", false, "Also write a default config file")
	rootCmd.AddCommand(initCmd)
}
