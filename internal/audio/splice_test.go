package audio

import (
	"errors"
	"testing"

	"subsplice/internal/srt"
)

func rampBuffer(n, rate int) *Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) / float64(n)
	}
	return NewBuffer(samples, rate)
}

func TestSpliceContiguousOutput(t *testing.T) {
	// 4 seconds at 24000 Hz
	buf := rampBuffer(96000, 24000)
	lines := []srt.Line{
		srt.NewLine(1, 0, 1999, "Hello"),
		srt.NewLine(2, 3000, 4000, "World"),
	}

	result, err := Splice(buf, lines)
	if err != nil {
		t.Fatalf("Splice failed: %v", err)
	}

	// 1.999s + 1.0s at 24000 Hz
	if result.Buffer.Len() != 47976+24000 {
		t.Errorf("output length = %d, want %d", result.Buffer.Len(), 71976)
	}
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result.Lines))
	}

	if result.Lines[0].StartTime != 0 {
		t.Errorf("first line starts at %d, want 0", result.Lines[0].StartTime)
	}
	if result.Lines[1].StartTime != result.Lines[0].EndTime {
		t.Errorf("output not contiguous: line 1 ends %d, line 2 starts %d",
			result.Lines[0].EndTime, result.Lines[1].StartTime)
	}

	// text and id survive, index is regenerated
	if result.Lines[0].Text != "Hello" || result.Lines[1].Text != "World" {
		t.Error("text not preserved")
	}
	if result.Lines[0].ID != lines[0].ID || result.Lines[1].ID != lines[1].ID {
		t.Error("ids not preserved")
	}
	if result.Lines[0].Index != 1 || result.Lines[1].Index != 2 {
		t.Error("indices not renumbered")
	}

	// samples come from the edited ranges of the source
	want := buf.Samples()[3000*24000/1000]
	if got := result.Buffer.Samples()[47976]; got != want {
		t.Errorf("second segment starts with sample %g, want %g", got, want)
	}
}

func TestSpliceDropsCollapsedLines(t *testing.T) {
	buf := rampBuffer(48000, 24000)
	collapsed := srt.NewLine(2, 1500, 1500, "collapsed")
	inverted := srt.NewLine(3, 1900, 1200, "inverted")
	lines := []srt.Line{
		srt.NewLine(1, 0, 1000, "kept"),
		collapsed,
		inverted,
	}

	result, err := Splice(buf, lines)
	if err != nil {
		t.Fatalf("Splice failed: %v", err)
	}
	if len(result.Lines) != 1 {
		t.Fatalf("expected 1 surviving line, got %d", len(result.Lines))
	}
	for _, line := range result.Lines {
		if line.ID == collapsed.ID || line.ID == inverted.ID {
			t.Errorf("dropped line %q leaked into output", line.Text)
		}
	}
	if result.Buffer.Len() != 24000 {
		t.Errorf("output length = %d, want 24000", result.Buffer.Len())
	}
}

func TestSpliceEmptyResult(t *testing.T) {
	buf := rampBuffer(48000, 24000)

	_, err := Splice(buf, nil)
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("empty sequence: got %v, want ErrEmptyResult", err)
	}

	_, err = Splice(buf, []srt.Line{srt.NewLine(1, 500, 500, "gone")})
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("all collapsed: got %v, want ErrEmptyResult", err)
	}
}

func TestSpliceClampsToBufferEnd(t *testing.T) {
	// 1 second buffer, line claims 2 seconds
	buf := rampBuffer(24000, 24000)
	lines := []srt.Line{srt.NewLine(1, 0, 2000, "long")}

	result, err := Splice(buf, lines)
	if err != nil {
		t.Fatalf("Splice failed: %v", err)
	}
	if result.Buffer.Len() != 24000 {
		t.Errorf("output length = %d, want 24000", result.Buffer.Len())
	}
	if result.Lines[0].EndTime != 1000 {
		t.Errorf("end retimed to %d, want 1000", result.Lines[0].EndTime)
	}
}

func TestSpliceNegativeStartClamped(t *testing.T) {
	buf := rampBuffer(24000, 24000)
	lines := []srt.Line{srt.NewLine(1, -500, 1000, "early")}

	result, err := Splice(buf, lines)
	if err != nil {
		t.Fatalf("Splice failed: %v", err)
	}
	if result.Buffer.Len() != 24000 {
		t.Errorf("output length = %d, want 24000", result.Buffer.Len())
	}
}

func TestSpliceDoesNotMutateSource(t *testing.T) {
	buf := rampBuffer(48000, 24000)
	before := buf.Samples()[100]

	result, err := Splice(buf, []srt.Line{srt.NewLine(1, 0, 1000, "x")})
	if err != nil {
		t.Fatal(err)
	}
	result.Buffer.Samples()[100] = 42

	if buf.Samples()[100] != before {
		t.Error("splice output aliases the source buffer")
	}
}
