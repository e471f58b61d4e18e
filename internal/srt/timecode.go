package srt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimecode converts an SRT timestamp (HH:MM:SS,mmm) to milliseconds.
// A period before the millisecond field is accepted as well. Malformed
// input yields 0: timestamps are hand-edited display text and a hard
// failure here would make the editor unusable mid-edit.
func ParseTimecode(s string) int {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == ',' || r == '.'
	})
	if len(parts) != 4 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	seconds, _ := strconv.Atoi(parts[2])
	millis, _ := strconv.Atoi(parts[3])
	return (hours*3600+minutes*60+seconds)*1000 + millis
}

// FormatTimecode converts milliseconds to the canonical comma form.
// Negative input is clamped to zero.
func FormatTimecode(totalMs int) string {
	if totalMs < 0 {
		totalMs = 0
	}
	ms := totalMs % 1000
	totalSeconds := totalMs / 1000
	hours := totalSeconds / 3600
	totalSeconds %= 3600
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms)
}
