package domain

import (
	"errors"
	"fmt"
)

var ErrDuplicateLogID = errors.New("duplicate practice log id")

// PracticeLog records one skill practiced on one day. SkillName is captured
// at logging time and is never re-derived from the catalog.
type PracticeLog struct {
	ID        string `json:"id"`
	SkillID   string `json:"skillId"`
	SkillName string `json:"skillName"`
	Date      string `json:"date"`
	Variant   string `json:"variant,omitempty"`
	Note      string `json:"note,omitempty"`
}

// LogStore is the ordered, id-indexed collection of practice logs. It is not
// safe for concurrent use; the tracker serializes all access.
type LogStore struct {
	logs  []PracticeLog
	index map[string]int
}

func NewLogStore() *LogStore {
	return &LogStore{index: make(map[string]int)}
}

// NewLogStoreFrom builds a store from logs in order. Later duplicates of an
// id are dropped.
func NewLogStoreFrom(logs []PracticeLog) *LogStore {
	s := NewLogStore()
	for _, l := range logs {
		_ = s.Append(l)
	}
	return s
}

// Append adds l at the end. An empty or already-present id is a caller bug
// and is reported as ErrDuplicateLogID.
func (s *LogStore) Append(l PracticeLog) error {
	if l.ID == "" {
		return fmt.Errorf("%w: empty id", ErrDuplicateLogID)
	}
	if _, ok := s.index[l.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLogID, l.ID)
	}
	s.index[l.ID] = len(s.logs)
	s.logs = append(s.logs, l)
	return nil
}

// Remove deletes the log with the given id and reports whether one existed.
func (s *LogStore) Remove(id string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.logs = append(s.logs[:pos], s.logs[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.logs); i++ {
		s.index[s.logs[i].ID] = i
	}
	return true
}

// UpdateNote replaces the note of the log with the given id. It reports false
// and changes nothing when the id is absent.
func (s *LogStore) UpdateNote(id, note string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.logs[pos].Note = note
	return true
}

// Replace discards the current contents and loads logs in order, dropping
// later duplicates of an id.
func (s *LogStore) Replace(logs []PracticeLog) {
	s.logs = nil
	s.index = make(map[string]int, len(logs))
	for _, l := range logs {
		_ = s.Append(l)
	}
}

func (s *LogStore) Get(id string) (PracticeLog, bool) {
	pos, ok := s.index[id]
	if !ok {
		return PracticeLog{}, false
	}
	return s.logs[pos], true
}

// ListAll returns a copy of every log in insertion order.
func (s *LogStore) ListAll() []PracticeLog {
	out := make([]PracticeLog, len(s.logs))
	copy(out, s.logs)
	return out
}

// ListForDate returns the logs whose Date equals date, in insertion order.
func (s *LogStore) ListForDate(date string) []PracticeLog {
	var out []PracticeLog
	for _, l := range s.logs {
		if l.Date == date {
			out = append(out, l)
		}
	}
	return out
}

func (s *LogStore) Len() int {
	return len(s.logs)
}
