/*
Package audit records field-level changes to a loan file.

An in-memory, append-only change log: who changed which field, the old
and new value, and when. The engine itself never writes here - the API
layer records changes as the presentation collaborator submits them, so
an underwriter can later explain how an input reached its current value.
*/
package audit

import (
	"sync"
	"time"
)

// Entry is one recorded change.
type Entry struct {
	User      string    `json:"user"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old"`
	NewValue  string    `json:"new"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is an append-only in-memory audit log. Safe for concurrent use.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog creates an empty audit log.
func NewLog() *Log {
	return &Log{}
}

// Record appends a change with the current timestamp.
func (l *Log) Record(user, field, oldValue, newValue string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		User:      user,
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		Timestamp: time.Now().UTC(),
	})
}

// Entries returns a copy of the log in insertion order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded changes.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
