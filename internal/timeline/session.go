package timeline

import (
	"github.com/google/uuid"

	"subsplice/internal/audio"
	"subsplice/internal/srt"
)

// HistoryItem pairs one generated or reconstructed audio take with the
// editor holding its subtitle track. The buffer is immutable once stored;
// later operations always allocate a new one, so the snapshot stays valid.
type HistoryItem struct {
	ID     string
	Script string
	Buffer *audio.Buffer
	Editor *Editor

	// Reconstructed marks takes produced by splicing rather than synthesis.
	Reconstructed bool
}

// Session is the in-memory state of one editing session: an ordered take
// history, newest first, with one active take receiving edits.
type Session struct {
	items    []*HistoryItem
	activeID string
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) add(item *HistoryItem) *HistoryItem {
	s.items = append([]*HistoryItem{item}, s.items...)
	s.activeID = item.ID
	return item
}

// AddGenerated records a freshly synthesized take. The lines become both
// the working copy and the frozen baseline of its editor.
func (s *Session) AddGenerated(script string, buf *audio.Buffer, lines []srt.Line) *HistoryItem {
	return s.add(&HistoryItem{
		ID:     uuid.NewString(),
		Script: script,
		Buffer: buf,
		Editor: NewEditor(lines),
	})
}

// AddReconstructed records the output of a splice as a new take with its
// own fresh baseline.
func (s *Session) AddReconstructed(script string, buf *audio.Buffer, lines []srt.Line) *HistoryItem {
	item := s.add(&HistoryItem{
		ID:     uuid.NewString(),
		Script: script,
		Buffer: buf,
		Editor: NewEditor(lines),
	})
	item.Reconstructed = true
	return item
}

// Active returns the take currently receiving edits, or nil.
func (s *Session) Active() *HistoryItem {
	return s.find(s.activeID)
}

// SetActive switches editing context to the given take.
func (s *Session) SetActive(id string) bool {
	if s.find(id) == nil {
		return false
	}
	s.activeID = id
	return true
}

func (s *Session) find(id string) *HistoryItem {
	for _, item := range s.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Items returns the take history, newest first.
func (s *Session) Items() []*HistoryItem {
	return s.items
}

// Clear discards every take.
func (s *Session) Clear() {
	s.items = nil
	s.activeID = ""
}
