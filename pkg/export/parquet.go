// Package export serializes decoded price series into interchange
// formats: CSV for quick inspection and parquet for analytics
// pipelines. It writes what the reader decoded and builds no analysis
// objects of its own.
package export

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/openseries/metastock/pkg/ms"
)

// PriceRow is one price record flattened for parquet output.
type PriceRow struct {
	Symbol       string  `parquet:"name=symbol, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Date         string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Open         float64 `parquet:"name=open, type=DOUBLE, encoding=PLAIN"`
	High         float64 `parquet:"name=high, type=DOUBLE, encoding=PLAIN"`
	Low          float64 `parquet:"name=low, type=DOUBLE, encoding=PLAIN"`
	Close        float64 `parquet:"name=close, type=DOUBLE, encoding=PLAIN"`
	Volume       float64 `parquet:"name=volume, type=DOUBLE, encoding=PLAIN"`
	OpenInterest float64 `parquet:"name=open_interest, type=DOUBLE, encoding=PLAIN"`
}

// WriteParquet writes a symbol's records to a GZIP-compressed parquet
// file at path.
func WriteParquet(path, symbol string, records []ms.PriceRecord) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewParquetWriter(fw, new(PriceRow), 4)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_GZIP
	pw.RowGroupSize = 128 * 1024 * 1024
	pw.PageSize = 8 * 1024

	for _, rec := range records {
		row := PriceRow{
			Symbol:       symbol,
			Date:         dateString(rec.Date),
			Open:         rec.Open,
			High:         rec.High,
			Low:          rec.Low,
			Close:        rec.Close,
			Volume:       rec.Volume,
			OpenInterest: rec.OpenInterest,
		}
		if err := pw.Write(row); err != nil {
			return fmt.Errorf("write parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("finalize parquet file: %w", err)
	}
	return nil
}
