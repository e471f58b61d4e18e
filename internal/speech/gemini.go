package speech

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"subsplice/internal/audio"
	"subsplice/internal/srt"
)

const (
	defaultTTSModel        = "gemini-2.5-flash-preview-tts"
	defaultTranscribeModel = "gemini-2.5-flash"
)

// implements Service using Google Gemini
type GeminiService struct {
	client  *genai.Client
	options Options
}

func NewGeminiService(ctx context.Context, apiKey string, opts Options) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if opts.SampleRate <= 0 {
		opts.SampleRate = audio.DefaultSampleRate
	}
	if opts.SplitCharCount <= 0 {
		opts.SplitCharCount = 25
	}

	return &GeminiService{
		client:  client,
		options: opts,
	}, nil
}

// Synthesize renders text with the configured prebuilt voice. The response
// carries raw 16-bit mono PCM at the model's native rate.
func (s *GeminiService) Synthesize(ctx context.Context, text string) (*audio.Buffer, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: s.options.Voice,
				},
			},
			LanguageCode: s.options.LanguageCode,
		},
	}

	model := s.options.Model
	if model == "" {
		model = defaultTTSModel
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(text)}, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("synthesis failed: %w", err)
	}

	pcm := extractInlineAudio(result)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("response contained no audio data")
	}

	return audio.FromPCM16(pcm, s.options.SampleRate), nil
}

// Transcribe sends the audio inline with a subtitler prompt and parses the
// SRT the model returns. With a reference script the prompt demands forced
// alignment instead of free transcription.
func (s *GeminiService) Transcribe(ctx context.Context, buf *audio.Buffer, referenceScript string) ([]srt.Line, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(audio.EncodeWAV(buf), "audio/wav"),
		genai.NewPartFromText(s.buildSubtitlerPrompt(referenceScript)),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, defaultTranscribeModel, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	text := extractText(result)
	if text == "" {
		return nil, fmt.Errorf("no text in Gemini response")
	}

	lines := srt.Parse(extractSRTBlock(text))
	if len(lines) == 0 {
		return nil, fmt.Errorf("response contained no parseable subtitles (response: %s)", truncateString(text, 200))
	}
	return lines, nil
}

// creates the subtitler prompt
func (s *GeminiService) buildSubtitlerPrompt(referenceScript string) string {
	var sb strings.Builder

	sb.WriteString("You are a professional subtitler. Produce a precise SRT file for this audio.\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("1. Follow the standard SubRip (.srt) format strictly: index, then hh:mm:ss,ms --> hh:mm:ss,ms, then text, then a blank line.\n")
	sb.WriteString("2. Capture segment boundaries with millisecond precision against the waveform.\n")
	sb.WriteString("3. Output ONLY the SRT content inside a ```srt code block, nothing else.\n")

	if referenceScript != "" {
		sb.WriteString("\nForced alignment mode: the reference script below is the exact transcript of the audio. ")
		sb.WriteString("Do not transcribe; map each script line to its time range.\n")
		sb.WriteString("The audio is synthesized speech, so the first cue must start at 00:00:00,000. ")
		sb.WriteString("Cues must never overlap: each cue starts only after the previous voice has ended, ")
		sb.WriteString("leaving breath pauses uncaptioned if needed.\n")
		sb.WriteString("Keep the script text verbatim, but split any line longer than ")
		fmt.Fprintf(&sb, "%d characters at a natural pause.\n", s.options.SplitCharCount)
		sb.WriteString("\nReference script:\n")
		sb.WriteString(referenceScript)
		sb.WriteString("\n")
	} else {
		sb.WriteString("\nTranscription mode: listen and transcribe the speech exactly, ")
		sb.WriteString("breaking lines at natural phrase boundaries. ")
		fmt.Fprintf(&sb, "Keep each cue under %d characters.\n", s.options.SplitCharCount)
	}

	return sb.String()
}

var srtBlockRegex = regexp.MustCompile("(?s)```(?:srt)?\\s*(.*?)```")

// pulls the fenced SRT payload out of the model's reply, tolerating any
// surrounding prose
func extractSRTBlock(s string) string {
	if m := srtBlockRegex.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

func extractInlineAudio(result *genai.GenerateContentResponse) []byte {
	if result == nil {
		return nil
	}
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

func extractText(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}
	var sb strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

// truncates a string to maxLen characters
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
