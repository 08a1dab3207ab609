package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "roombook/pkg/errors"
)

// Zone-less layouts are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTimestamp accepts RFC 3339 or a zone-less ISO-like timestamp and
// returns it normalized to UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp is empty")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}

// ExtractTimeWindow reads the optional start_time/end_time query parameters.
func ExtractTimeWindow(r *http.Request) (*time.Time, *time.Time, error) {
	query := r.URL.Query()

	var from, to *time.Time
	if s := query.Get("start_time"); s != "" {
		t, err := ParseTimestamp(s)
		if err != nil {
			return nil, nil, apperrors.InvalidInput("invalid start_time parameter: " + s)
		}
		from = &t
	}
	if s := query.Get("end_time"); s != "" {
		t, err := ParseTimestamp(s)
		if err != nil {
			return nil, nil, apperrors.InvalidInput("invalid end_time parameter: " + s)
		}
		to = &t
	}
	return from, to, nil
}
