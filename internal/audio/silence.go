package audio

import "math"

const (
	// DefaultSilenceThreshold is the full-scale amplitude below which a
	// sample counts as silent.
	DefaultSilenceThreshold = 0.01

	// DefaultMinSilenceDuration is the shortest run, in seconds, worth
	// reporting as a cut candidate.
	DefaultMinSilenceDuration = 0.25
)

// SilentSegment is one detected run of near-silence, in seconds.
type SilentSegment struct {
	Start float64
	End   float64
}

// DetectSilence scans the buffer for contiguous runs of samples whose
// amplitude stays below threshold. Runs shorter than minDuration are
// ignored; a run extending to the end of the buffer is reported under the
// same rule. Segments come back non-overlapping, in scan (hence time)
// order. Pass zero for either parameter to use the defaults.
func DetectSilence(buf *Buffer, threshold, minDuration float64) []SilentSegment {
	if threshold <= 0 {
		threshold = DefaultSilenceThreshold
	}
	if minDuration <= 0 {
		minDuration = DefaultMinSilenceDuration
	}

	samples := buf.Samples()
	rate := float64(buf.SampleRate())
	minSamples := int(minDuration * rate)

	var segments []SilentSegment
	silenceStart := -1

	for i, sample := range samples {
		silent := math.Abs(sample) < threshold
		switch {
		case silent && silenceStart == -1:
			silenceStart = i
		case !silent && silenceStart != -1:
			if i-silenceStart >= minSamples {
				segments = append(segments, SilentSegment{
					Start: float64(silenceStart) / rate,
					End:   float64(i) / rate,
				})
			}
			silenceStart = -1
		}
	}
	if silenceStart != -1 && len(samples)-silenceStart >= minSamples {
		segments = append(segments, SilentSegment{
			Start: float64(silenceStart) / rate,
			End:   float64(len(samples)) / rate,
		})
	}
	return segments
}
