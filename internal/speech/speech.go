// Package speech abstracts the AI collaborators: text-to-speech synthesis
// and audio-to-subtitle transcription.
package speech

import (
	"context"
	"fmt"

	"subsplice/internal/audio"
	"subsplice/internal/srt"
)

// speech service provider
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// synthesis and transcription options
type Options struct {
	Voice          string // prebuilt voice name for synthesis
	Model          string
	LanguageCode   string // BCP-47 code for synthesis, e.g. "ko-KR"
	SampleRate     int    // sample rate of synthesized PCM
	SplitCharCount int    // max characters per subtitle line
}

// Synthesizer renders narration text into a mono PCM buffer.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*audio.Buffer, error)
}

// Transcriber aligns an audio buffer to subtitle lines. A non-empty
// referenceScript switches providers that support it into forced-alignment
// mode, where the script is the ground truth and only timings are inferred.
type Transcriber interface {
	Transcribe(ctx context.Context, buf *audio.Buffer, referenceScript string) ([]srt.Line, error)
}

// Service is a provider that can do both.
type Service interface {
	Synthesizer
	Transcriber
}

// creates a speech service based on provider
func Factory(ctx context.Context, provider Provider, apiKey string, opts Options) (Service, error) {
	switch provider {
	case ProviderGemini:
		return NewGeminiService(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAIService(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
