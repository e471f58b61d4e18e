package srt

import (
	"github.com/google/uuid"
)

// represents single subtitle line
type Line struct {
	ID        string
	Index     int
	StartTime int // milliseconds
	EndTime   int // milliseconds
	Text      string
}

func NewLine(index, startTime, endTime int, text string) Line {
	return Line{
		ID:        uuid.NewString(),
		Index:     index,
		StartTime: startTime,
		EndTime:   endTime,
		Text:      text,
	}
}

// CloneLines deep-copies a line slice. Snapshots handed to history must not
// alias the working copy.
func CloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Renumber assigns 1-based display indices in slice order. Line IDs are
// never touched.
func Renumber(lines []Line) {
	for i := range lines {
		lines[i].Index = i + 1
	}
}
