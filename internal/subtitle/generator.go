// Package subtitle turns timed transcription segments into subtitle lines
// capped at a target character count.
package subtitle

import (
	"strings"
	"unicode/utf8"

	"subsplice/internal/srt"
)

// Segment is one timed span of transcribed speech, in milliseconds.
type Segment struct {
	StartMs int
	EndMs   int
	Text    string
}

// DefaultTargetLineLength mirrors the editor's default split setting.
const DefaultTargetLineLength = 25

// Generator converts segments to srt.Lines, splitting segments whose text
// exceeds the target line length proportionally across their time range.
type Generator struct {
	TargetLineLength int
}

func NewGenerator(targetLineLength int) *Generator {
	if targetLineLength <= 0 {
		targetLineLength = DefaultTargetLineLength
	}
	return &Generator{TargetLineLength: targetLineLength}
}

// Generate builds an ordered line sequence from segments. Empty segments
// are skipped; long ones are split into several lines.
func (g *Generator) Generate(segments []Segment) []srt.Line {
	var lines []srt.Line
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		if utf8.RuneCountInString(text) <= g.TargetLineLength {
			lines = append(lines, srt.NewLine(len(lines)+1, seg.StartMs, seg.EndMs, text))
			continue
		}

		for _, part := range g.splitSegment(seg, text) {
			part.Index = len(lines) + 1
			lines = append(lines, part)
		}
	}
	return lines
}

// splits a long segment into several lines, distributing words evenly and
// the time range proportionally
func (g *Generator) splitSegment(seg Segment, text string) []srt.Line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	totalChars := utf8.RuneCountInString(text)
	numSplits := (totalChars + g.TargetLineLength - 1) / g.TargetLineLength
	if numSplits < 1 {
		numSplits = 1
	}
	if numSplits > len(words) {
		numSplits = len(words)
	}

	wordsPerSplit := (len(words) + numSplits - 1) / numSplits
	totalDuration := seg.EndMs - seg.StartMs
	durationPerSplit := totalDuration / numSplits

	var lines []srt.Line
	currentStart := seg.StartMs

	for i := 0; i < numSplits && len(words) > 0; i++ {
		endIdx := wordsPerSplit
		if endIdx > len(words) {
			endIdx = len(words)
		}
		splitWords := words[:endIdx]
		words = words[endIdx:]

		currentEnd := currentStart + durationPerSplit
		// last split absorbs the rounding remainder
		if len(words) == 0 {
			currentEnd = seg.EndMs
		}

		lines = append(lines, srt.NewLine(
			i+1,
			currentStart,
			currentEnd,
			strings.Join(splitWords, " "),
		))
		currentStart = currentEnd
	}
	return lines
}
