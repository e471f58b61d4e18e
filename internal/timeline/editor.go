package timeline

import (
	"strings"

	"subsplice/internal/srt"
)

// minimum duration forced onto a line when a clamped edit would collapse it
const minLineDurationMs = 100

// Editor owns the working subtitle sequence for one audio take and applies
// single-line mutations to it. It is the single source of truth: history
// views hold the editor itself, never a second mutated copy.
//
// Timestamp edits run in one of two modes. With sync enabled, edits
// propagate to neighbors (rolling/ripple semantics); with sync disabled,
// edits are clamped so a line can never overlap its neighbors.
type Editor struct {
	lines    []srt.Line
	baseline []srt.Line

	// SyncEnabled selects ripple mode (true) over clamp mode (false).
	SyncEnabled bool

	timestampEdits bool
}

// NewEditor freezes lines as the reset baseline and starts a working copy.
func NewEditor(lines []srt.Line) *Editor {
	return &Editor{
		lines:       srt.CloneLines(lines),
		baseline:    srt.CloneLines(lines),
		SyncEnabled: true,
	}
}

// Lines returns the working sequence. The slice is owned by the editor;
// callers must treat it as read-only.
func (e *Editor) Lines() []srt.Line {
	return e.lines
}

// Baseline returns a copy of the frozen reset target.
func (e *Editor) Baseline() []srt.Line {
	return srt.CloneLines(e.baseline)
}

// HasTimestampEdits reports whether any timing (as opposed to purely
// cosmetic text) edit happened since the baseline was frozen. Callers use
// it to gate audio reconstruction.
func (e *Editor) HasTimestampEdits() bool {
	return e.timestampEdits
}

func (e *Editor) indexOf(id string) int {
	for i := range e.lines {
		if e.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// Retime changes a line's start and/or end time. Nil means "leave as is".
//
// Ripple mode (sync enabled): a start edit shifts the previous line's end
// by the same delta so it still ends where this line begins; an end edit
// shifts every subsequent line's start and end by the delta, preserving
// their internal spacing. Nothing is clamped.
//
// Clamp mode: the start is bounded below by the previous line's end (or 0
// for the first line) and the end is bounded above by the next line's
// start. If the clamped line would collapse, the field that was not being
// edited is pushed to leave a 100ms duration, silently overriding the
// literal request.
func (e *Editor) Retime(id string, newStart, newEnd *int) {
	index := e.indexOf(id)
	if index == -1 {
		return
	}

	line := e.lines[index]
	oldStart := line.StartTime
	oldEnd := line.EndTime
	startEdited := newStart != nil
	endEdited := newEnd != nil

	if startEdited {
		line.StartTime = *newStart
	}
	if endEdited {
		line.EndTime = *newEnd
	}
	e.lines[index] = line

	if e.SyncEnabled {
		if startEdited && index > 0 {
			delta := line.StartTime - oldStart
			e.lines[index-1].EndTime += delta
		}
		if endEdited {
			delta := line.EndTime - oldEnd
			for i := index + 1; i < len(e.lines); i++ {
				e.lines[i].StartTime += delta
				e.lines[i].EndTime += delta
			}
		}
	} else {
		if index > 0 {
			if prevEnd := e.lines[index-1].EndTime; line.StartTime < prevEnd {
				line.StartTime = prevEnd
			}
		} else if line.StartTime < 0 {
			line.StartTime = 0
		}

		if index < len(e.lines)-1 {
			if nextStart := e.lines[index+1].StartTime; line.EndTime > nextStart {
				line.EndTime = nextStart
			}
		}

		if line.StartTime >= line.EndTime {
			if startEdited {
				line.EndTime = line.StartTime + minLineDurationMs
			} else if endEdited {
				line.StartTime = max(0, line.EndTime-minLineDurationMs)
			}
		}
		e.lines[index] = line
	}

	if startEdited || endEdited {
		e.timestampEdits = true
	}
}

// Retext replaces a line's text. Cosmetic only: the timestamp-edit flag is
// deliberately left alone so pure text fixes never block reconstruction.
func (e *Editor) Retext(id, text string) {
	if index := e.indexOf(id); index != -1 {
		e.lines[index].Text = text
	}
}

// Remove deletes a line and renumbers the rest for display.
func (e *Editor) Remove(id string) {
	index := e.indexOf(id)
	if index == -1 {
		return
	}
	e.lines = append(e.lines[:index], e.lines[index+1:]...)
	srt.Renumber(e.lines)
	e.timestampEdits = true
}

// Split divides the line at index at the given rune offset into its text.
// The time range is split proportionally by character count; the second
// half gets a fresh id. A split that would leave the second half empty is
// a no-op.
func (e *Editor) Split(index, offset int) {
	if index < 0 || index >= len(e.lines) {
		return
	}
	line := e.lines[index]
	runes := []rune(line.Text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	firstText := strings.TrimSpace(string(runes[:offset]))
	secondText := strings.TrimSpace(string(runes[offset:]))
	if secondText == "" {
		return
	}

	duration := line.EndTime - line.StartTime
	splitTime := line.StartTime + duration*offset/len(runes)

	first := line
	first.Text = firstText
	first.EndTime = splitTime

	second := srt.NewLine(line.Index+1, splitTime, line.EndTime, secondText)

	e.lines = append(e.lines[:index],
		append([]srt.Line{first, second}, e.lines[index+1:]...)...)
	srt.Renumber(e.lines)
	e.timestampEdits = true
}

// MergeUp folds the line at index into the one above it. The surviving
// line keeps its own timestamps; the texts are trimmed and joined with a
// single space. No-op for the first line.
func (e *Editor) MergeUp(index int) {
	if index <= 0 || index >= len(e.lines) {
		return
	}
	e.merge(index-1, index)
}

// MergeDown folds the line below index into it. No-op for the last line.
func (e *Editor) MergeDown(index int) {
	if index < 0 || index >= len(e.lines)-1 {
		return
	}
	e.merge(index, index+1)
}

func (e *Editor) merge(survivor, absorbed int) {
	combined := strings.TrimSpace(strings.TrimSpace(e.lines[survivor].Text) +
		" " + strings.TrimSpace(e.lines[absorbed].Text))
	e.lines[survivor].Text = combined
	e.lines = append(e.lines[:absorbed], e.lines[absorbed+1:]...)
	srt.Renumber(e.lines)
	e.timestampEdits = true
}

// BulkShift moves every line by deltaMs, clamping each endpoint at zero.
func (e *Editor) BulkShift(deltaMs int) {
	for i := range e.lines {
		e.lines[i].StartTime = max(0, e.lines[i].StartTime+deltaMs)
		e.lines[i].EndTime = max(0, e.lines[i].EndTime+deltaMs)
	}
	e.timestampEdits = true
}

// Reset replaces the working sequence with a fresh copy of the baseline
// and clears the timestamp-edit flag.
func (e *Editor) Reset() {
	e.lines = srt.CloneLines(e.baseline)
	e.timestampEdits = false
}

// LineAt returns the line covering the given playback position. Read-only
// linear scan; safe to call at high frequency from a playback clock.
func (e *Editor) LineAt(ms int) (srt.Line, bool) {
	for _, line := range e.lines {
		if ms >= line.StartTime && ms < line.EndTime {
			return line, true
		}
	}
	return srt.Line{}, false
}
