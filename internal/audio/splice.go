package audio

import (
	"errors"

	"subsplice/internal/srt"
)

// ErrEmptyResult is returned when splicing would produce zero samples:
// every line collapsed or the sequence was empty. Surfaced explicitly
// because silently writing an empty audio artifact is worse than stopping.
var ErrEmptyResult = errors.New("no audio remains after edits: all lines were deleted or have invalid time ranges")

// SpliceResult pairs the rebuilt buffer with its retimed subtitle track.
type SpliceResult struct {
	Buffer *Buffer
	Lines  []srt.Line
}

// Splice cuts the sample range implied by each line's [start, end) out of
// src and concatenates the pieces in sequence order, no gaps, no
// cross-fade. The returned lines keep their id and text but are retimed
// back-to-back from zero, so the output track is contiguous by
// construction. Lines whose range is empty or inverted are dropped from
// both outputs; collapsing a line's duration is how a region gets deleted.
//
// Splice takes the edited timestamps at face value. Whether a given edit
// state should be spliced at all (e.g. requiring real trim decisions) is
// the caller's policy, not enforced here.
func Splice(src *Buffer, lines []srt.Line) (*SpliceResult, error) {
	rate := src.SampleRate()
	data := src.Samples()

	type segment struct {
		start, end int
		line       srt.Line
	}

	var segments []segment
	totalLength := 0
	for _, line := range lines {
		startMs := max(0, line.StartTime)
		start := startMs * rate / 1000
		end := line.EndTime * rate / 1000
		if end > len(data) {
			end = len(data)
		}
		if end <= start {
			continue
		}
		segments = append(segments, segment{start: start, end: end, line: line})
		totalLength += end - start
	}

	if totalLength <= 0 {
		return nil, ErrEmptyResult
	}

	out := make([]float64, totalLength)
	newLines := make([]srt.Line, 0, len(segments))
	offset := 0
	for _, seg := range segments {
		n := copy(out[offset:], data[seg.start:seg.end])

		line := seg.line
		line.Index = len(newLines) + 1
		line.StartTime = offset * 1000 / rate
		offset += n
		line.EndTime = offset * 1000 / rate
		newLines = append(newLines, line)
	}

	return &SpliceResult{
		Buffer: NewBuffer(out, rate),
		Lines:  newLines,
	}, nil
}
