package audio

// Buffer holds decoded mono audio as float samples in [-1, 1]. Buffers are
// immutable once built: every transformation allocates a new one, so a
// buffer handed to playback or kept in history never changes underneath
// its holder.
type Buffer struct {
	samples    []float64
	sampleRate int
}

func NewBuffer(samples []float64, sampleRate int) *Buffer {
	return &Buffer{samples: samples, sampleRate: sampleRate}
}

// Samples returns the sample data. Callers must not modify it.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

func (b *Buffer) Len() int {
	return len(b.samples)
}

// DurationSeconds returns the buffer length in seconds.
func (b *Buffer) DurationSeconds() float64 {
	if b.sampleRate == 0 {
		return 0
	}
	return float64(len(b.samples)) / float64(b.sampleRate)
}

// DurationMs returns the buffer length in whole milliseconds, rounded down.
func (b *Buffer) DurationMs() int {
	if b.sampleRate == 0 {
		return 0
	}
	return len(b.samples) * 1000 / b.sampleRate
}
