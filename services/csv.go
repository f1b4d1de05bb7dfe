package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// CSVRecord is one parsed data row keyed by its lower-cased header name.
// All values are trimmed.
type CSVRecord map[string]string

// ParseCSV reads an entire uploaded CSV. The first row is the header; empty
// lines are skipped; ragged rows are tolerated (missing cells read as "").
// A malformed file fails as a whole - no rows from it are ever processed.
func ParseCSV(r io.Reader) ([]CSVRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("csv file has no header row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	records := make([]CSVRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		record := make(CSVRecord, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = strings.TrimSpace(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
