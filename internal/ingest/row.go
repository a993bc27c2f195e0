package ingest

import (
	"strconv"
	"strings"
)

// Row is one source record, columns addressed by case-insensitive header
// name. Accessors never fail: a corrupt value resolves to the zero of its
// type so one bad field never poisons the batch.
type Row struct {
	fields map[string]string
}

// ListSeparator splits multi-value columns (highlights, categories, ...).
const ListSeparator = "|"

func (r Row) Has(col string) bool {
	_, ok := r.fields[strings.ToLower(col)]
	return ok
}

// Str returns the trimmed value of col, or "" when absent.
func (r Row) Str(col string) string {
	return strings.TrimSpace(r.fields[strings.ToLower(col)])
}

// Float strips non-numeric characters then parses; unparseable -> 0.
func (r Row) Float(col string) float64 {
	s := stripNonNumeric(r.Str(col))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func (r Row) Int(col string) int {
	return int(r.Float(col))
}

// Bool recognizes true/1/yes case-insensitively; anything else is false.
func (r Row) Bool(col string) bool {
	switch strings.ToLower(r.Str(col)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// List splits a multi-value column on ListSeparator, trimming entries and
// dropping empties; order is preserved.
func (r Row) List(col string) []string {
	raw := r.Str(col)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// stripNonNumeric keeps digits, one leading sign and the first decimal
// point, so values like "$1,200.50", "4.6 stars" or "v1.2.3" still coerce.
func stripNonNumeric(s string) string {
	var b strings.Builder
	dotted := false
	for i, c := range s {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '.' && !dotted:
			dotted = true
			b.WriteRune(c)
		case c == '-' && i == 0:
			b.WriteRune(c)
		}
	}
	return b.String()
}
