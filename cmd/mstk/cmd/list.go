package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every symbol in the database",
	Long: `List every symbol in the database, legacy index first, then the
extended index when present.

Example:
  mstk list --db /data/metastock`,
	Run: func(cmd *cobra.Command, args []string) {
		catalog, ok := catalogFromContext(cmd)
		if !ok {
			cmd.Println("Error: catalog not found in context")
			return
		}

		metas, err := catalog.Metadata()
		if err != nil {
			cmd.Printf("Error reading index: %v\n", err)
			return
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tNAME\tFILE\tFIRST\tLAST")
		for _, m := range metas {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				m.Symbol, m.Name, priceFile(m.FileNumber), dateOrDash(m.FirstDate), dateOrDash(m.LastDate))
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
