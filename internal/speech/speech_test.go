package speech

import (
	"strings"
	"testing"
)

func TestExtractSRTBlock(t *testing.T) {
	srtBody := "1\n00:00:00,000 --> 00:00:02,000\nHello\n"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "srt fenced block",
			input: "```srt\n" + srtBody + "```",
			want:  strings.TrimSpace(srtBody),
		},
		{
			name:  "bare fenced block",
			input: "```\n" + srtBody + "```",
			want:  strings.TrimSpace(srtBody),
		},
		{
			name:  "fence with surrounding prose",
			input: "Here is your subtitle file:\n```srt\n" + srtBody + "```\nHope that helps!",
			want:  strings.TrimSpace(srtBody),
		},
		{
			name:  "no fence at all",
			input: srtBody,
			want:  strings.TrimSpace(srtBody),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractSRTBlock(tt.input); got != tt.want {
				t.Errorf("extractSRTBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildSubtitlerPrompt(t *testing.T) {
	s := &GeminiService{options: Options{SplitCharCount: 30}}

	plain := s.buildSubtitlerPrompt("")
	if !strings.Contains(plain, "Transcription mode") {
		t.Error("prompt without script must request transcription")
	}
	if strings.Contains(plain, "Forced alignment") {
		t.Error("prompt without script must not request alignment")
	}
	if !strings.Contains(plain, "30") {
		t.Error("prompt must carry the split character count")
	}

	aligned := s.buildSubtitlerPrompt("안녕하세요. 반갑습니다.")
	if !strings.Contains(aligned, "Forced alignment") {
		t.Error("prompt with script must request alignment")
	}
	if !strings.Contains(aligned, "안녕하세요. 반갑습니다.") {
		t.Error("prompt must embed the reference script")
	}
	if !strings.Contains(aligned, "00:00:00,000") {
		t.Error("alignment prompt must pin the first cue to zero")
	}
}

func TestParseVerboseJSONResponse(t *testing.T) {
	s := &OpenAIService{options: Options{SplitCharCount: 25}}

	tests := []struct {
		name      string
		input     string
		wantCount int
		wantErr   bool
	}{
		{
			name: "segments present",
			input: `{"text": "Hello world", "segments": [
				{"start": 0.0, "end": 2.5, "text": "Hello"},
				{"start": 2.5, "end": 5.0, "text": "world"}
			]}`,
			wantCount: 2,
		},
		{
			name:      "text only falls back to one segment",
			input:     `{"text": "Hello world", "duration": 3.0}`,
			wantCount: 1,
		},
		{
			name:    "empty response",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no segments and no text",
			input:   `{"segments": []}`,
			wantErr: true,
		},
		{
			name: "blank segments dropped",
			input: `{"segments": [
				{"start": 0.0, "end": 1.0, "text": "   "},
				{"start": 1.0, "end": 2.0, "text": "kept"}
			]}`,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := s.parseVerboseJSONResponse(tt.input, 5000)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(segments) != tt.wantCount {
				t.Errorf("got %d segments, want %d", len(segments), tt.wantCount)
			}
		})
	}
}

func TestParseVerboseJSONMillisecondConversion(t *testing.T) {
	s := &OpenAIService{}
	segments, err := s.parseVerboseJSONResponse(
		`{"segments": [{"start": 1.5, "end": 2.25, "text": "hi"}]}`, 0)
	if err != nil {
		t.Fatal(err)
	}
	if segments[0].StartMs != 1500 || segments[0].EndMs != 2250 {
		t.Errorf("segment = [%d,%d], want [1500,2250]", segments[0].StartMs, segments[0].EndMs)
	}
}
