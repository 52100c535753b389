package adapters

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/muse-tools/streamcast/pkg/models/domain"
)

// WriteSeriesCSV writes a revenue series as exactly two columns, month and
// revenue, with a header row. Revenue keeps full float precision; rounding
// is a display concern.
func WriteSeriesCSV(w io.Writer, series domain.RevenueSeries) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"month", "revenue"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range series {
		record := []string{
			strconv.Itoa(p.Month),
			strconv.FormatFloat(p.Revenue, 'f', -1, 64),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for month %d: %w", p.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
