package srt

import "testing"

func TestParseTimecode(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00:00,000", 0},
		{"00:00:01,500", 1500},
		{"00:01:00,000", 60000},
		{"01:00:00,000", 3600000},
		{"10:59:59,999", 39599999},
		// period separator accepted on input
		{"00:00:02.250", 2250},
		// single-digit hour
		{"1:02:03,004", 3723004},

		// malformed input fails soft
		{"", 0},
		{"garbage", 0},
		{"00:00", 0},
		{"00:00:01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseTimecode(tt.input); got != tt.want {
				t.Errorf("ParseTimecode(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTimecode(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "00:00:00,000"},
		{1, "00:00:00,001"},
		{999, "00:00:00,999"},
		{1500, "00:00:01,500"},
		{60000, "00:01:00,000"},
		{3600000, "01:00:00,000"},
		{39599999, "10:59:59,999"},
		// negative input is clamped to the zero sentinel
		{-5, "00:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimecode(tt.input); got != tt.want {
				t.Errorf("FormatTimecode(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimecodeRoundTrip(t *testing.T) {
	values := []int{0, 1, 42, 999, 1000, 59999, 60000, 3599999, 3600000, 86399999}
	for _, ms := range values {
		if got := ParseTimecode(FormatTimecode(ms)); got != ms {
			t.Errorf("round trip of %d ms gave %d", ms, got)
		}
	}
}
