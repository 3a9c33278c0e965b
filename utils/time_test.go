package utils

import (
	"testing"
	"time"
)

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"RFC3339 with Z", "2035-04-01T20:00:00Z", "2035-04-01T20:00:00Z", false},
		{"Without zone", "2035-04-01T20:00:00", "2035-04-01T20:00:00Z", false},
		{"Space separator", "2035-04-01 20:00:00", "2035-04-01T20:00:00Z", false},
		{"Garbage", "not-a-time", "", true},
		{"Empty", "", "", true},
		{"Date only", "2035-04-01", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStartTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStartTime(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStartTime(%q) error: %v", tt.input, err)
			}
			if formatted := FormatStartTime(got); formatted != tt.want {
				t.Errorf("FormatStartTime = %q, want %q", formatted, tt.want)
			}
		})
	}
}

func TestFormatStartTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	ts := time.Date(2035, 4, 2, 3, 0, 0, 0, loc)
	if got := FormatStartTime(ts); got != "2035-04-01T20:00:00Z" {
		t.Errorf("FormatStartTime = %q, want 2035-04-01T20:00:00Z", got)
	}
}
