package http

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 utc", input: "2025-01-01T10:00:00Z", want: want},
		{name: "rfc3339 offset normalized", input: "2025-01-01T12:00:00+02:00", want: want},
		{name: "zone-less seconds", input: "2025-01-01T10:00:00", want: want},
		{name: "zone-less minutes", input: "2025-01-01T10:00", want: want},
		{name: "space separated", input: "2025-01-01 10:00", want: want},
		{name: "empty", input: "  ", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) || got.Location() != time.UTC {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractTimeWindow(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/rooms/A/bookings?start_time=2025-01-01T10:00&end_time=2025-01-01T12:00", nil)
	from, to, err := ExtractTimeWindow(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from == nil || to == nil {
		t.Fatalf("expected both bounds, got %v %v", from, to)
	}
	if to.Sub(*from) != 2*time.Hour {
		t.Errorf("unexpected window %v - %v", from, to)
	}

	req = httptest.NewRequest("GET", "/api/v1/rooms/A/bookings", nil)
	from, to, err = ExtractTimeWindow(req)
	if err != nil || from != nil || to != nil {
		t.Errorf("expected empty window, got %v %v %v", from, to, err)
	}

	req = httptest.NewRequest("GET", "/api/v1/rooms/A/bookings?end_time=soon", nil)
	if _, _, err = ExtractTimeWindow(req); err == nil {
		t.Errorf("expected error for malformed end_time")
	}
}
