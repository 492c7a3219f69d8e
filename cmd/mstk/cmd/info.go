package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/openseries/metastock/pkg/ms"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info <symbol>",
	Short: "Show one symbol's metadata and record count",
	Long: `Show a symbol's catalog metadata and the record count of its price
file.

Example:
  mstk info ES___CCB --db /data/metastock`,
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

		cmd.Printf("Symbol:      %s\n", sec.Meta.Symbol)
		cmd.Printf("Name:        %s\n", sec.Meta.Name)
		cmd.Printf("Price file:  %s\n", priceFile(sec.Meta.FileNumber))
		cmd.Printf("First date:  %s\n", dateOrDash(sec.Meta.FirstDate))
		cmd.Printf("Last date:   %s\n", dateOrDash(sec.Meta.LastDate))
		cmd.Printf("Records:     %d\n", sec.Series.Count())
	},
}

func priceFile(fileNumber uint16) string {
	return ms.PriceFileName(fileNumber)
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
