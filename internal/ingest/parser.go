// Package ingest parses delimited tabular source text into typed rows.
// Parsing is defensive end to end: a malformed row is skipped, a malformed
// field resolves to a safe default, and one bad record never aborts the
// batch.
package ingest

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// Parse reads delimited text with a header row and returns the well-formed
// records in source order. Quoted fields may contain the delimiter and
// doubled-quote escapes. Rows with fewer fields than the header are skipped;
// surplus fields are ignored.
func Parse(raw string) []Row {
	rd := csv.NewReader(strings.NewReader(raw))
	rd.FieldsPerRecord = -1 // we enforce width ourselves, per row
	rd.TrimLeadingSpace = true

	header, err := rd.Read()
	if err != nil {
		log.Warn().Err(err).Msg("ingest: unreadable header, empty batch")
		return nil
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []Row
	line := 1
	for {
		line++
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv-level defect in a single record; keep going.
			log.Warn().Err(err).Int("line", line).Msg("ingest: bad record skipped")
			continue
		}
		if len(rec) < len(cols) {
			log.Warn().Int("line", line).Int("fields", len(rec)).Int("want", len(cols)).
				Msg("ingest: short row skipped")
			continue
		}
		fields := make(map[string]string, len(cols))
		for i, c := range cols {
			if c == "" {
				continue
			}
			fields[c] = rec[i]
		}
		rows = append(rows, Row{fields: fields})
	}
	return rows
}
