package storage

import (
	"context"
	"time"
)

const maxErrorEntries = 50

// ErrorEntry is one diagnostic record in the persisted error log.
type ErrorEntry struct {
	Message   string    `json:"message"`
	Context   string    `json:"context,omitempty"`
	Stack     string    `json:"stack,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LogError appends an entry to the persisted error log, keeping only the
// most recent entries. Logging is best-effort and never fails the caller.
func (s *Store) LogError(ctx context.Context, entry ErrorEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	entries := []ErrorEntry{}
	s.get(ctx, keyErrorLogs, &entries)
	entries = append(entries, entry)
	if len(entries) > maxErrorEntries {
		entries = entries[len(entries)-maxErrorEntries:]
	}
	if err := s.put(ctx, keyErrorLogs, entries); err != nil {
		s.logger.Warn("persisting error log failed", "error", err)
	}
}

// ErrorLog returns the persisted error log, oldest first.
func (s *Store) ErrorLog(ctx context.Context) []ErrorEntry {
	entries := []ErrorEntry{}
	s.get(ctx, keyErrorLogs, &entries)
	return entries
}
