package routes

import (
	"testing"
	"time"
)

func TestFormatSpanishDate(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), "02 de enero de 2026"},
		{time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC), "15 de septiembre de 2025"},
		{time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "31 de diciembre de 2024"},
	}
	for _, tc := range cases {
		if got := formatSpanishDate(tc.date); got != tc.want {
			t.Fatalf("formatSpanishDate(%v) = %q, want %q", tc.date, got, tc.want)
		}
	}
}
