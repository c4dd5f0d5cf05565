package domain

// FieldChange is the before/after pair of one modified field.
type FieldChange struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

// ChangeTracker records which fields of an aggregate were modified and the
// values on both sides of the change. Recording the same field twice keeps
// the original old value.
type ChangeTracker struct {
	changes map[string]FieldChange
}

// NewChangeTracker creates a new ChangeTracker instance.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		changes: make(map[string]FieldChange),
	}
}

// Record marks field as modified from old to new.
func (ct *ChangeTracker) Record(field string, old, new interface{}) {
	if prev, ok := ct.changes[field]; ok {
		old = prev.Old
	}
	ct.changes[field] = FieldChange{Old: old, New: new}
}

// Dirty checks if a specific field has been modified.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.changes[field]
	return ok
}

// HasChanges returns true if any field was modified.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.changes) > 0
}

// Changes returns a copy of the recorded changes keyed by field.
func (ct *ChangeTracker) Changes() map[string]FieldChange {
	out := make(map[string]FieldChange, len(ct.changes))
	for k, v := range ct.changes {
		out[k] = v
	}
	return out
}

// Clear drops everything recorded so far.
func (ct *ChangeTracker) Clear() {
	ct.changes = make(map[string]FieldChange)
}
