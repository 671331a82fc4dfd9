// Package codec converts between typed record fields and the raw string
// cells of a spreadsheet row.
//
// This package has no I/O dependencies. Coercion functions are lenient:
// an empty or unparsable cell yields nil, never an error, so that a blank
// remote cell cannot clobber a locally held value with a zero. The sync
// engine decides the null-vs-skip policy centrally.
package codec

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical date format used on the remote side.
const DateLayout = "2006-01-02"

// dateLayouts are tried in order when coercing a raw cell to a date.
var dateLayouts = []string{
	DateLayout,
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
}

// truthy cell values, compared case-insensitively.
var truthy = map[string]bool{
	"true":    true,
	"yes":     true,
	"1":       true,
	"x":       true,
	"checked": true,
}

// ZipRow pairs header names with row cells. Short rows are padded with
// empty strings up to len(headers), so ragged remote rows never cause
// index errors. Cells beyond the header width are dropped.
func ZipRow(headers, row []string) map[string]string {
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if i < len(row) {
			fields[h] = row[i]
		} else {
			fields[h] = ""
		}
	}
	return fields
}

// Date coerces a raw cell to a calendar date, trying known layouts in
// order. Returns nil if none parse.
func Date(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// Float coerces a raw cell to a float. Returns nil on empty or
// unparsable input.
func Float(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Int coerces a raw cell to an int. Parses through float first, because
// sheet cells frequently carry values like "250.0" for whole numbers.
// Returns nil on empty or unparsable input.
func Int(raw string) *int {
	f := Float(raw)
	if f == nil {
		return nil
	}
	i := int(*f)
	return &i
}

// Bool coerces a raw cell to a boolean. The values "true", "yes", "1",
// "x" and "checked" (case-insensitive) are true; everything else,
// including an empty cell, is false.
func Bool(raw string) bool {
	return truthy[strings.ToLower(strings.TrimSpace(raw))]
}

// String coerces a raw cell to an optional string: nil for an empty
// cell, the trimmed-of-nothing original otherwise.
func String(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

// FormatDate renders a date as YYYY-MM-DD, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatBool renders a boolean as "TRUE" or "FALSE".
func FormatBool(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "TRUE"
	}
	return "FALSE"
}

// FormatFloat renders a float with the shortest representation that
// round-trips, or "" for nil.
func FormatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// FormatInt renders an int, or "" for nil.
func FormatInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

// FormatString renders an optional string, or "" for nil.
func FormatString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
