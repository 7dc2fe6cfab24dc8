package timeutil

import (
	"testing"
	"time"
)

func TestFormatUnixMillis(t *testing.T) {
	cases := []struct {
		name   string
		millis int64
		want   string
	}{
		{name: "epoch", millis: 0, want: "1970-01-01T00:00:00Z"},
		{name: "whole seconds", millis: 1_700_000_000_000, want: "2023-11-14T22:13:20Z"},
		{name: "fractional", millis: 1_700_000_000_123, want: "2023-11-14T22:13:20.123Z"},
		{name: "before epoch", millis: -1000, want: "1969-12-31T23:59:59Z"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatUnixMillis(tc.millis); got != tc.want {
				t.Fatalf("FormatUnixMillis(%d) = %q, want %q", tc.millis, got, tc.want)
			}
		})
	}
}

func TestParseRFC3339(t *testing.T) {
	if _, err := ParseRFC3339(""); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := ParseRFC3339("yesterday"); err == nil {
		t.Fatal("expected error for garbage input")
	}

	got, err := ParseRFC3339("2026-02-04T01:23:45.5Z")
	if err != nil {
		t.Fatalf("ParseRFC3339() error = %v", err)
	}
	want := time.Date(2026, 2, 4, 1, 23, 45, 500_000_000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseRFC3339() = %v, want %v", got, want)
	}
}

func TestUnixMillisFromRFC3339(t *testing.T) {
	got, err := UnixMillisFromRFC3339("2023-11-14T22:13:20.123456Z")
	if err != nil {
		t.Fatalf("UnixMillisFromRFC3339() error = %v", err)
	}
	if got != 1_700_000_000_123 {
		t.Fatalf("UnixMillisFromRFC3339() = %d, want 1700000000123", got)
	}

	if FormatUnixMillis(got) != "2023-11-14T22:13:20.123Z" {
		t.Fatalf("FormatUnixMillis(%d) = %q", got, FormatUnixMillis(got))
	}
}

func TestAge(t *testing.T) {
	if got := Age(2*time.Second, 5*time.Second); got != 3*time.Second {
		t.Fatalf("Age() = %v, want 3s", got)
	}
	if got := Age(5*time.Second, 2*time.Second); got != 0 {
		t.Fatalf("Age() of future reading = %v, want 0", got)
	}
}
