package audio

import "fmt"

// Slice copies the [startSec, endSec) range out of a buffer. The end is
// clamped to the buffer's duration.
func Slice(buf *Buffer, startSec, endSec float64) (*Buffer, error) {
	rate := buf.SampleRate()
	startSample := int(startSec * float64(rate))
	endSample := int(min(endSec, buf.DurationSeconds()) * float64(rate))
	if startSample < 0 {
		startSample = 0
	}
	if endSample > buf.Len() {
		endSample = buf.Len()
	}

	frameCount := endSample - startSample
	if frameCount <= 0 {
		return nil, fmt.Errorf("slice [%gs, %gs) is empty", startSec, endSec)
	}

	out := make([]float64, frameCount)
	copy(out, buf.Samples()[startSample:endSample])
	return NewBuffer(out, rate), nil
}

// RemoveSegments rebuilds the buffer without the given silent segments,
// concatenating the audio between them. Segments must be non-overlapping
// and in time order, as produced by DetectSilence. Removing nothing (or
// everything) falls back to the original buffer respectively an error.
func RemoveSegments(buf *Buffer, segments []SilentSegment) (*Buffer, error) {
	if len(segments) == 0 {
		return buf, nil
	}

	var kept []*Buffer
	total := 0
	cursor := 0.0
	for _, seg := range segments {
		if seg.Start > cursor {
			piece, err := Slice(buf, cursor, seg.Start)
			if err == nil {
				kept = append(kept, piece)
				total += piece.Len()
			}
		}
		cursor = seg.End
	}
	if cursor < buf.DurationSeconds() {
		piece, err := Slice(buf, cursor, buf.DurationSeconds())
		if err == nil {
			kept = append(kept, piece)
			total += piece.Len()
		}
	}

	if total == 0 {
		return nil, ErrEmptyResult
	}

	out := make([]float64, 0, total)
	for _, piece := range kept {
		out = append(out, piece.Samples()...)
	}
	return NewBuffer(out, buf.SampleRate()), nil
}
