package domain

import "sort"

// StatusOverlay maps skill ids to user-declared statuses. Entries are only
// ever set, never cleared, and take precedence over inferred status.
type StatusOverlay struct {
	entries map[string]SkillStatus
}

func NewStatusOverlay() *StatusOverlay {
	return &StatusOverlay{entries: make(map[string]SkillStatus)}
}

// StatusOverlayFromSerializable rebuilds an overlay from its stored mapping.
// Unrecognized status strings are coerced to StatusNew.
func StatusOverlayFromSerializable(m map[string]string) *StatusOverlay {
	o := NewStatusOverlay()
	for id, raw := range m {
		o.entries[id] = CoerceStatus(raw)
	}
	return o
}

func (o *StatusOverlay) Set(skillID string, status SkillStatus) {
	o.entries[skillID] = status
}

// Get returns the stored status; ok is false when the skill was never set.
// A nil overlay holds no entries.
func (o *StatusOverlay) Get(skillID string) (status SkillStatus, ok bool) {
	if o == nil {
		return "", false
	}
	status, ok = o.entries[skillID]
	return status, ok
}

func (o *StatusOverlay) Len() int {
	if o == nil {
		return 0
	}
	return len(o.entries)
}

// SkillIDs returns the ids with an explicit status, sorted.
func (o *StatusOverlay) SkillIDs() []string {
	if o == nil {
		return nil
	}
	ids := make([]string, 0, len(o.entries))
	for id := range o.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ToSerializable returns the mapping form written to storage.
func (o *StatusOverlay) ToSerializable() map[string]string {
	if o == nil {
		return map[string]string{}
	}
	m := make(map[string]string, len(o.entries))
	for id, s := range o.entries {
		m[id] = string(s)
	}
	return m
}
