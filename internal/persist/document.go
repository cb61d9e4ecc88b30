package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/skatelog/internal/domain"
)

var errMalformed = errors.New("malformed document")

// Document is the persisted state: every practice log plus the status
// overlay in its serializable form.
type Document struct {
	Logs     []domain.PracticeLog `json:"logs"`
	Statuses map[string]string    `json:"statuses"`
}

// Encode serializes logs and overlay into one document. Empty state encodes
// as {"logs":[],"statuses":{}}.
func Encode(logs []domain.PracticeLog, overlay *domain.StatusOverlay) ([]byte, error) {
	doc := Document{Logs: logs, Statuses: map[string]string{}}
	if doc.Logs == nil {
		doc.Logs = []domain.PracticeLog{}
	}
	if overlay != nil {
		doc.Statuses = overlay.ToSerializable()
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// decodeStats reports what a tolerant decode had to discard.
type decodeStats struct {
	droppedLogs   int
	badLogsField  bool
	badStatuses   bool
	coercedValues int
}

// Decode parses a stored document field by field. A top-level value that is
// not an object yields errMalformed, except the legacy empty array and null,
// which report found == false. A "logs" field that is not an array, or a
// "statuses" field that is not an object, decodes as empty. Log entries that
// fail to parse or carry no id are dropped. Non-string status values are
// coerced to new along with unknown strings.
func Decode(data []byte) (doc Document, found bool, err error) {
	doc, found, _, err = decode(data)
	return doc, found, err
}

func decode(data []byte) (Document, bool, decodeStats, error) {
	var stats decodeStats
	empty := Document{Logs: []domain.PracticeLog{}, Statuses: map[string]string{}}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return empty, false, stats, nil
	}

	var top any
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return empty, false, stats, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if arr, ok := top.([]any); ok && len(arr) == 0 {
		return empty, false, stats, nil
	}
	if _, ok := top.(map[string]any); !ok {
		return empty, false, stats, fmt.Errorf("%w: top-level value is not an object", errMalformed)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return empty, false, stats, fmt.Errorf("%w: %v", errMalformed, err)
	}

	doc := empty
	if raw, ok := fields["logs"]; ok {
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			stats.badLogsField = !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
		}
		for _, e := range entries {
			var l domain.PracticeLog
			if err := json.Unmarshal(e, &l); err != nil || l.ID == "" {
				stats.droppedLogs++
				continue
			}
			doc.Logs = append(doc.Logs, l)
		}
	}

	if raw, ok := fields["statuses"]; ok {
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			stats.badStatuses = !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
		}
		for id, v := range entries {
			var s string
			_ = json.Unmarshal(v, &s)
			status := domain.CoerceStatus(s)
			if string(status) != s {
				stats.coercedValues++
			}
			doc.Statuses[id] = string(status)
		}
	}

	return doc, true, stats, nil
}
