package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openseries/metastock/pkg/export"
)

// dumpCmd represents the dump command.
var dumpCmd = &cobra.Command{
	Use:   "dump <symbol>",
	Short: "Dump a symbol's price series as CSV",
	Long: `Decode a symbol's price file and write it as CSV to stdout or, with
--output, to a file.

Examples:
  mstk dump ES___CCB --db /data/metastock
  mstk dump ES___CCB -o es.csv`,
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

		out := cmd.OutOrStdout()
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				cmd.Printf("Error creating %s: %v\n", path, err)
				return
			}
			defer f.Close()
			out = f
		}

		if err := export.WriteCSV(out, sec.Meta.Symbol, records); err != nil {
			cmd.Printf("Error writing CSV: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringP("output", "o", "", "Write CSV to a file instead of stdout")
}
