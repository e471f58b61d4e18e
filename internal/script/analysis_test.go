package script

import (
	"strings"
	"testing"
)

func TestAnalyzeEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		got := Analyze(text)
		if got.CharCount != 0 || got.WordCount != 0 || got.SentenceCount != 0 ||
			len(got.TopWords) != 0 {
			t.Errorf("Analyze(%q) not zero: %+v", text, got)
		}
	}
}

func TestAnalyzeCounts(t *testing.T) {
	text := "Hello world. How are you?\n\nFine, thanks!"
	a := Analyze(text)

	if a.WordCount != 7 {
		t.Errorf("WordCount = %d, want 7", a.WordCount)
	}
	if a.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", a.SentenceCount)
	}
	if a.ParagraphCount != 2 {
		t.Errorf("ParagraphCount = %d, want 2", a.ParagraphCount)
	}
	if a.LineCount != 3 {
		t.Errorf("LineCount = %d, want 3", a.LineCount)
	}
	if a.CharCount <= a.CharCountNoSpaces {
		t.Error("space-stripped count must be smaller")
	}
}

func TestAnalyzeNoTerminatorCountsOneSentence(t *testing.T) {
	if got := Analyze("no punctuation here").SentenceCount; got != 1 {
		t.Errorf("SentenceCount = %d, want 1", got)
	}
}

func TestAnalyzeComposition(t *testing.T) {
	a := Analyze("안녕 ab 12 !")
	c := a.Composition

	if c.Hangul != 2 || c.English != 2 || c.Digits != 2 {
		t.Errorf("composition = %+v", c)
	}
	if c.Spaces != 3 || c.Symbols != 1 {
		t.Errorf("composition = %+v", c)
	}
	if c.Total != c.Hangul+c.English+c.Digits+c.Spaces+c.Symbols {
		t.Error("composition classes must sum to total")
	}
}

func TestAnalyzeTopWords(t *testing.T) {
	a := Analyze("go go go run run walk")

	if len(a.TopWords) == 0 || a.TopWords[0].Word != "go" || a.TopWords[0].Count != 3 {
		t.Fatalf("TopWords = %+v", a.TopWords)
	}
	if a.UniqueWordCount != 3 {
		t.Errorf("UniqueWordCount = %d, want 3", a.UniqueWordCount)
	}
	if len(a.TopBigrams) == 0 || a.TopBigrams[0].Word != "go go" {
		t.Errorf("TopBigrams = %+v", a.TopBigrams)
	}
}

func TestAnalyzeReadTime(t *testing.T) {
	// 400 chars/min -> 100 non-space chars read in 15s
	a := Analyze(strings.Repeat("a", 100))
	if a.ReadTimeSeconds != 15 {
		t.Errorf("ReadTimeSeconds = %d, want 15", a.ReadTimeSeconds)
	}
}

func TestEstimateSpeechSeconds(t *testing.T) {
	if got := EstimateSpeechSeconds("ab cd"); got != 1.0 {
		t.Errorf("EstimateSpeechSeconds = %v, want 1.0", got)
	}
	if got := EstimateSpeechSeconds("   "); got != 0 {
		t.Errorf("whitespace-only estimate = %v, want 0", got)
	}
}

func TestSplitIntoChunksSentenceAware(t *testing.T) {
	chunks := SplitIntoChunks("First one. Second one. Third.", 15)

	want := []string{"First one.", "Second one.", "Third."}
	if len(chunks) != len(want) {
		t.Fatalf("chunks = %q", chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplitIntoChunksLongSentence(t *testing.T) {
	chunks := SplitIntoChunks("one two three four five six", 9)

	for _, c := range chunks {
		if len([]rune(c)) > 9 {
			t.Errorf("chunk %q exceeds limit", c)
		}
	}
	if strings.Join(chunks, " ") != "one two three four five six" {
		t.Errorf("words lost: %q", chunks)
	}
}

func TestSplitIntoChunksNonPositiveLimit(t *testing.T) {
	chunks := SplitIntoChunks("whatever text", 0)
	if len(chunks) != 1 || chunks[0] != "whatever text" {
		t.Errorf("chunks = %q", chunks)
	}
}

func TestAutoFormatBreaksOnSelectedMarks(t *testing.T) {
	in := []string{"Hello there. How are you? Fine, thanks!"}
	out := AutoFormat(in, AutoFormatOptions{Period: true, Question: true})

	want := []string{"Hello there.", "How are you?", "Fine, thanks!"}
	if len(out) != len(want) {
		t.Fatalf("out = %q", out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestAutoFormatCommaAndReflow(t *testing.T) {
	// existing line breaks are treated as spaces before reflowing
	in := []string{"First part,", "second part, third"}
	out := AutoFormat(in, AutoFormatOptions{Comma: true})

	want := []string{"First part,", "second part,", "third"}
	if len(out) != len(want) {
		t.Fatalf("out = %q", out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, out[i], want[i])
		}
	}
}

func TestAutoFormatNoTriggersIsNoop(t *testing.T) {
	in := []string{"a. b? c!"}
	out := AutoFormat(in, AutoFormatOptions{})
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("out = %q", out)
	}
}
