package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"subsplice/internal/audio"
	"subsplice/internal/srt"
	"subsplice/internal/subtitle"
)

// implements Service using the OpenAI Audio API. Transcription only; the
// API has no prebuilt-voice PCM synthesis matching the session model.
type OpenAIService struct {
	client  openai.Client
	model   string
	options Options
}

// segment from Whisper's verbose_json response
type whisperSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type whisperVerboseResponse struct {
	Text     string           `json:"text"`
	Segments []whisperSegment `json:"segments"`
	Duration float64          `json:"duration"`
}

func NewOpenAIService(_ context.Context, apiKey string, opts Options) (*OpenAIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "whisper-1"
	}
	if opts.SplitCharCount <= 0 {
		opts.SplitCharCount = 25
	}

	return &OpenAIService{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (s *OpenAIService) Synthesize(ctx context.Context, text string) (*audio.Buffer, error) {
	return nil, fmt.Errorf("synthesis is not supported by the openai provider")
}

// Transcribe runs Whisper with segment timestamps and converts the result
// to subtitle lines. The reference script is passed as a prompt hint;
// Whisper has no true forced-alignment mode.
func (s *OpenAIService) Transcribe(ctx context.Context, buf *audio.Buffer, referenceScript string) ([]srt.Line, error) {
	params := openai.AudioTranscriptionNewParams{
		File:                   openai.File(bytes.NewReader(audio.EncodeWAV(buf)), "audio.wav", "audio/wav"),
		Model:                  openai.AudioModel(s.model),
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"segment"},
	}
	if referenceScript != "" {
		params.Prompt = openai.String(referenceScript)
	}

	resp, err := s.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	segments, err := s.parseVerboseJSONResponse(resp.RawJSON(), buf.DurationMs())
	if err != nil {
		return nil, err
	}

	gen := subtitle.NewGenerator(s.options.SplitCharCount)
	lines := gen.Generate(segments)
	if len(lines) == 0 {
		return nil, fmt.Errorf("response contained no speech segments")
	}
	return lines, nil
}

func (s *OpenAIService) parseVerboseJSONResponse(rawJSON string, fallbackMs int) ([]subtitle.Segment, error) {
	if rawJSON == "" {
		return nil, fmt.Errorf("empty response")
	}

	var verbose whisperVerboseResponse
	if err := json.Unmarshal([]byte(rawJSON), &verbose); err != nil {
		return nil, fmt.Errorf("failed to parse verbose_json response: %w", err)
	}

	if len(verbose.Segments) == 0 {
		if strings.TrimSpace(verbose.Text) == "" {
			return nil, fmt.Errorf("no segments or text in response")
		}
		endMs := fallbackMs
		if verbose.Duration > 0 {
			endMs = int(verbose.Duration * 1000)
		}
		return []subtitle.Segment{{
			StartMs: 0,
			EndMs:   endMs,
			Text:    strings.TrimSpace(verbose.Text),
		}}, nil
	}

	segments := make([]subtitle.Segment, 0, len(verbose.Segments))
	for _, seg := range verbose.Segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		segments = append(segments, subtitle.Segment{
			StartMs: int(seg.Start * 1000),
			EndMs:   int(seg.End * 1000),
			Text:    text,
		})
	}
	return segments, nil
}
