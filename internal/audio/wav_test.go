package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestEncodeWAVHeader(t *testing.T) {
	buf := NewBuffer(make([]float64, 24000), 24000)
	data := EncodeWAV(buf)

	if len(data) != 44+48000 {
		t.Fatalf("expected %d bytes, got %d", 44+48000, len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if got := binary.LittleEndian.Uint32(data[4:]); got != 36+48000 {
		t.Errorf("RIFF size = %d, want %d", got, 36+48000)
	}
	if got := binary.LittleEndian.Uint16(data[20:]); got != 1 {
		t.Errorf("format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:]); got != 24000 {
		t.Errorf("sample rate = %d, want 24000", got)
	}
	// byte rate = rate * blockAlign, blockAlign = 2 for 16-bit mono
	if got := binary.LittleEndian.Uint32(data[28:]); got != 48000 {
		t.Errorf("byte rate = %d, want 48000", got)
	}
	if got := binary.LittleEndian.Uint16(data[32:]); got != 2 {
		t.Errorf("block align = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if string(data[36:40]) != "data" {
		t.Error("missing data chunk id")
	}
	if got := binary.LittleEndian.Uint32(data[40:]); got != 48000 {
		t.Errorf("data size = %d, want 48000", got)
	}
}

func TestWAVRoundTrip(t *testing.T) {
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(float64(i)*2*math.Pi/100)
	}
	src := NewBuffer(samples, 24000)

	decoded, err := DecodeWAV(EncodeWAV(src))
	if err != nil {
		t.Fatalf("DecodeWAV failed: %v", err)
	}

	if decoded.SampleRate() != 24000 {
		t.Errorf("sample rate = %d, want 24000", decoded.SampleRate())
	}
	if decoded.Len() != src.Len() {
		t.Fatalf("length = %d, want %d", decoded.Len(), src.Len())
	}
	for i, got := range decoded.Samples() {
		if math.Abs(got-samples[i]) > 1.0/32767 {
			t.Fatalf("sample %d: got %g, want %g within quantization error", i, got, samples[i])
		}
	}
}

func TestEncodeWAVClampsSamples(t *testing.T) {
	buf := NewBuffer([]float64{2.0, -2.0}, 24000)
	data := EncodeWAV(buf)

	hi := int16(binary.LittleEndian.Uint16(data[44:]))
	lo := int16(binary.LittleEndian.Uint16(data[46:]))
	if hi != math.MaxInt16 {
		t.Errorf("over-range sample = %d, want %d", hi, math.MaxInt16)
	}
	if lo != math.MinInt16 {
		t.Errorf("under-range sample = %d, want %d", lo, math.MinInt16)
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	if _, err := DecodeWAV([]byte("definitely not a wav file at all, nope")); err == nil {
		t.Error("expected error for non-WAV input")
	}
	if _, err := DecodeWAV(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestFromPCM16(t *testing.T) {
	raw := make([]byte, 6)
	binary.LittleEndian.PutUint16(raw[0:], uint16(int16(math.MaxInt16)))
	binary.LittleEndian.PutUint16(raw[2:], 0)
	minSample := int16(math.MinInt16)
	binary.LittleEndian.PutUint16(raw[4:], uint16(minSample))

	buf := FromPCM16(raw, DefaultSampleRate)
	if buf.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", buf.Len())
	}
	s := buf.Samples()
	if s[1] != 0 {
		t.Errorf("zero sample decoded as %g", s[1])
	}
	if s[2] != -1 {
		t.Errorf("min sample decoded as %g, want -1", s[2])
	}
	if s[0] <= 0.999 || s[0] > 1 {
		t.Errorf("max sample decoded as %g", s[0])
	}
	if buf.SampleRate() != 24000 {
		t.Errorf("sample rate = %d", buf.SampleRate())
	}
}
