package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openseries/metastock/pkg/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a server config file with a generated API key",
	Long: `Write a YAML config file for 'mstk serve', generating a secure API
key. An existing file is loaded, not overwritten.

Example:
  mstk init --config mstk.yaml --db /data/metastock`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")
		dir, _ := cmd.Flags().GetString("db")

		cfg, err := config.BootstrapConfig(path, dir)
		if err != nil {
			cmd.Printf("Error bootstrapping config: %v\n", err)
			return
		}

		cmd.Printf("Config ready at %s\n", path)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "mstk.yaml", "Path of the config file to create")
}
