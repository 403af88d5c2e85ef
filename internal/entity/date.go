package entity

import "time"

const (
	DateDisplayLayout     = "Jan 02, 2006"
	DateTimeDisplayLayout = "Jan 02, 2006 - 3:04 PM"
	DateLayout            = "2006-01-02"
)

var parseLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", DateLayout}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatDate renders a stored date for display. Unparseable input is returned as is.
func FormatDate(raw string) string {
	t, ok := parseTimestamp(raw)
	if !ok {
		return raw
	}

	return t.Format(DateDisplayLayout)
}

// FormatDateTime is FormatDate with a time of day. Empty input renders as "N/A".
func FormatDateTime(raw string) string {
	if raw == "" {
		return "N/A"
	}
	t, ok := parseTimestamp(raw)
	if !ok {
		return raw
	}

	return t.Format(DateTimeDisplayLayout)
}
