package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	wavHeaderSize = 44
	bitsPerSample = 16

	// DefaultSampleRate matches the synthesis collaborator's PCM output.
	DefaultSampleRate = 24000
)

// FromPCM16 wraps raw 16-bit signed little-endian mono PCM, as returned by
// the synthesis collaborator, into a Buffer. A trailing odd byte is
// ignored.
func FromPCM16(raw []byte, sampleRate int) *Buffer {
	n := len(raw) / 2
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		samples[i] = float64(s) / 32768.0
	}
	return NewBuffer(samples, sampleRate)
}

// EncodeWAV serializes a buffer as a mono 16-bit PCM WAV file with the
// standard 44-byte header. Samples are clamped to [-1, 1].
func EncodeWAV(buf *Buffer) []byte {
	samples := buf.Samples()
	dataSize := len(samples) * 2

	out := make([]byte, wavHeaderSize+dataSize)
	blockAlign := bitsPerSample / 8 // mono
	byteRate := buf.SampleRate() * blockAlign

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+dataSize))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:], 1) // mono
	binary.LittleEndian.PutUint32(out[24:], uint32(buf.SampleRate()))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], bitsPerSample)

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))

	offset := wavHeaderSize
	for _, sample := range samples {
		s := math.Max(-1, math.Min(1, sample))
		var v int16
		if s < 0 {
			v = int16(s * 0x8000)
		} else {
			v = int16(s * 0x7FFF)
		}
		binary.LittleEndian.PutUint16(out[offset:], uint16(v))
		offset += 2
	}
	return out
}

// DecodeWAV parses a 16-bit PCM WAV file into a Buffer. Multi-channel
// input is mixed down by taking the first channel, matching the editor's
// mono processing model.
func DecodeWAV(data []byte) (*Buffer, error) {
	if len(data) < wavHeaderSize ||
		string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}

	var sampleRate, channels, bits int
	var pcm []byte

	// walk the chunk list; files in the wild carry LIST/INFO chunks
	// between fmt and data
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4:]))
		body := offset + 8
		if body+chunkSize > len(data) {
			chunkSize = len(data) - body
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("fmt chunk too short: %d bytes", chunkSize)
			}
			format := int(binary.LittleEndian.Uint16(data[body:]))
			if format != 1 {
				return nil, fmt.Errorf("unsupported WAV format %d (want PCM)", format)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			bits = int(binary.LittleEndian.Uint16(data[body+14:]))
		case "data":
			pcm = data[body : body+chunkSize]
		}

		// chunks are word-aligned
		offset = body + chunkSize + chunkSize%2
	}

	if sampleRate == 0 || channels == 0 {
		return nil, fmt.Errorf("missing fmt chunk")
	}
	if bits != 16 {
		return nil, fmt.Errorf("unsupported bit depth %d (want 16)", bits)
	}
	if pcm == nil {
		return nil, fmt.Errorf("missing data chunk")
	}

	frameSize := channels * 2
	frames := len(pcm) / frameSize
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		s := int16(binary.LittleEndian.Uint16(pcm[i*frameSize:]))
		samples[i] = float64(s) / 32768.0
	}
	return NewBuffer(samples, sampleRate), nil
}
