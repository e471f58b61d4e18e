package srt

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	blockSplitRegex = regexp.MustCompile(`\n{2,}`)
	timeRangeRegex  = regexp.MustCompile(
		`(\d{1,2}:\d{2}:\d{2}[,.]\d{1,3})\s*-->\s*(\d{1,2}:\d{2}:\d{2}[,.]\d{1,3})`,
	)
)

// Parse converts raw SRT text into an ordered line sequence.
//
// Input is split on blank-line boundaries; within each block the first line
// matching a time range is the timing line and everything after it is the
// text. Blocks without a timing line, or whose text trims to nothing, are
// dropped. Display indices are assigned by survival order: the numbering
// embedded in the source is never trusted, since hand-edited and
// AI-transcribed files routinely get it wrong.
func Parse(raw string) []Line {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), "\r\n", "\n")
	normalized = strings.TrimPrefix(normalized, "\ufeff")
	blocks := blockSplitRegex.Split(normalized, -1)

	var parsed []Line
	for _, block := range blocks {
		lines := strings.Split(block, "\n")

		timeLineIndex := -1
		var match []string
		for i, line := range lines {
			if m := timeRangeRegex.FindStringSubmatch(line); m != nil {
				timeLineIndex = i
				match = m
				break
			}
		}
		if timeLineIndex == -1 {
			continue
		}

		text := strings.TrimSpace(
			strings.Join(lines[timeLineIndex+1:], "\n"),
		)
		if text == "" {
			continue
		}

		parsed = append(parsed, NewLine(
			len(parsed)+1,
			ParseTimecode(match[1]),
			ParseTimecode(match[2]),
			text,
		))
	}
	return parsed
}

// Stringify serializes lines back to SRT text. Numbering is regenerated
// sequentially; Parse(Stringify(lines)) preserves timestamps and text.
func Stringify(lines []Line) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(strings.Join([]string{
			strconv.Itoa(i + 1),
			FormatTimecode(line.StartTime) + " --> " + FormatTimecode(line.EndTime),
			line.Text,
		}, "\n"))
	}
	return sb.String()
}

// AdjustGaps pulls each line's end time back to one millisecond before the
// next line's start. Upstream transcription emits back-to-back (and
// occasionally overlapping) ranges; tightening end times creates a visible
// gap without touching start times, which are treated as ground truth.
// A line is never shrunk past its own start time.
func AdjustGaps(lines []Line) []Line {
	if len(lines) < 2 {
		return lines
	}
	adjusted := CloneLines(lines)
	for i := 0; i < len(adjusted)-1; i++ {
		nextStart := adjusted[i+1].StartTime
		if nextStart <= 0 {
			continue
		}
		newEnd := nextStart - 1
		if newEnd > adjusted[i].StartTime {
			adjusted[i].EndTime = newEnd
		}
	}
	return adjusted
}
