package cmd

import (
	"github.com/spf13/cobra"

	"github.com/openseries/metastock/pkg/api"
	"github.com/openseries/metastock/pkg/config"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the database over HTTP",
	Long: `Start the read-only REST API over the open database. Configuration
comes from an optional YAML file; flags override it.

Examples:
  mstk serve --db /data/metastock --api-key=mysecret --port=8080
  mstk serve --db /data/metastock --config mstk.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		catalog, ok := catalogFromContext(cmd)
		if !ok {
			cmd.Println("Error: catalog not found in context")
			return
		}

		cfg := config.DefaultConfig()
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := config.LoadConfig(path)
			if err != nil {
				cmd.Printf("Error loading config: %v\n", err)
				return
			}
			cfg = loaded
		}

		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if cmd.Flags().Changed("cache-dir") {
			cfg.Cache.Dir, _ = cmd.Flags().GetString("cache-dir")
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			cmd.Println("Error: an API key is required (--api-key, or run 'mstk init' first)")
			return
		}

		serverConfig := api.ServerConfig{
			Bind:     cfg.Bind,
			Port:     cfg.Port,
			APIKey:   cfg.Security.APIKey,
			CacheDir: cfg.Cache.Dir,
		}
		if err := api.StartServer(catalog, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind")
	serveCmd.Flags().String("api-key", "", "API key protecting the read endpoints")
	serveCmd.Flags().String("cache-dir", "", "Directory for the decoded-series cache (empty disables)")
}
