package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

var csvHeader = []string{
	"project", "client", "location", "quote",
	"start", "end", "status", "revenue", "cost", "profit",
}

func writeCSV(rows []ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			row.Client,
			row.Location,
			money(row.Quote),
			row.Start,
			row.End,
			string(row.Status),
			money(row.Revenue),
			money(row.Cost),
			money(row.Profit),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
