package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openseries/metastock/pkg/ms"
)

// catalogKey is the command-context key the open catalog travels
// under.
const catalogKey = "catalog"

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "mstk",
	Short: "mstk - Metastock database reader",
	Long: `mstk reads a legacy Metastock price database: the emaster/xmaster
symbol indexes and the per-symbol F<n>.dat / F<n>.mwd price files.
It lists symbols, dumps decoded OHLCV series, and can serve the
database over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" {
			// init only writes a config file; no database needed.
			return nil
		}
		dir, _ := cmd.Flags().GetString("db")
		catalog, err := ms.OpenCatalog(dir)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		cmd.SetContext(context.WithValue(cmd.Context(), catalogKey, catalog))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if catalog, ok := cmd.Context().Value(catalogKey).(*ms.Catalog); ok {
			return catalog.Close()
		}
		return nil
	},
}

// catalogFromContext fetches the catalog the root command opened.
func catalogFromContext(cmd *cobra.Command) (*ms.Catalog, bool) {
	catalog, ok := cmd.Context().Value(catalogKey).(*ms.Catalog)
	return catalog, ok
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("db", "d", ".", "Metastock database directory")
}
