package export

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/openseries/metastock/pkg/ms"
)

// csvHeader matches the column order of PriceRow.
var csvHeader = []string{"symbol", "date", "open", "high", "low", "close", "volume", "open_interest"}

// WriteCSV streams a symbol's records to w as CSV with a header row.
// Absent dates produce an empty date column; NaN price fields produce
// empty cells rather than a literal "NaN".
func WriteCSV(w io.Writer, symbol string, records []ms.PriceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			symbol,
			dateString(rec.Date),
			floatString(rec.Open),
			floatString(rec.High),
			floatString(rec.Low),
			floatString(rec.Close),
			floatString(rec.Volume),
			floatString(rec.OpenInterest),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func dateString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func floatString(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
