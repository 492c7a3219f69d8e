package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openseries/metastock/pkg/export"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <symbol>",
	Short: "Export a symbol's price series to parquet",
	Long: `Decode a symbol's price file and write it as a GZIP-compressed
parquet file.

Examples:
  mstk export ES___CCB --db /data/metastock
  mstk export ES___CCB -o es.parquet`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, ok := catalogFromContext(cmd)
		if !ok {
			cmd.Println("Error: catalog not found in context")
			return
		}

		sec, err := catalog.Find(args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer sec.Close()

		records, err := sec.Series.Records()
		if err != nil {
			cmd.Printf("Error decoding series: %v\n", err)
			return
		}

		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			path = fmt.Sprintf("%s.parquet", sec.Meta.Symbol)
		}

		if err := export.WriteParquet(path, sec.Meta.Symbol, records); err != nil {
			cmd.Printf("Error writing parquet: %v\n", err)
			return
		}
		cmd.Printf("Wrote %d records to %s\n", len(records), path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Parquet output path (default <symbol>.parquet)")
}
