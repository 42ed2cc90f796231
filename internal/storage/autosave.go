package storage

import (
	"sync"
	"time"
)

// autoSaver owns the periodic save timer. It has its own lock so timer
// management never contends with storage reads and writes.
type autoSaver struct {
	mu   sync.Mutex
	fn   func()
	stop chan struct{}
}

// StartAutoSave arms the periodic save timer with the given callback. A
// running timer is replaced so at most one goroutine ever ticks. When
// auto-save is disabled in preferences the callback is recorded but no
// timer starts.
func (s *Store) StartAutoSave(fn func()) {
	s.saver.mu.Lock()
	defer s.saver.mu.Unlock()

	s.saver.fn = fn
	s.stopLocked()

	prefs := s.Preferences()
	if !prefs.AutoSave || fn == nil {
		return
	}

	stop := make(chan struct{})
	s.saver.stop = stop
	interval := prefs.Interval()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// Saving without an open project would only churn storage.
				if s.CurrentProject() == nil {
					continue
				}
				fn()
			}
		}
	}()
}

// StopAutoSave cancels the periodic save timer. Safe to call when no timer
// is running.
func (s *Store) StopAutoSave() {
	s.saver.mu.Lock()
	defer s.saver.mu.Unlock()
	s.stopLocked()
}

// restartAutoSave re-arms the timer with the current preferences, keeping
// the previously registered callback.
func (s *Store) restartAutoSave() {
	s.saver.mu.Lock()
	fn := s.saver.fn
	s.saver.mu.Unlock()
	s.StartAutoSave(fn)
}

// stopLocked closes the stop channel if a timer is running. Caller holds
// saver.mu.
func (s *Store) stopLocked() {
	if s.saver.stop != nil {
		close(s.saver.stop)
		s.saver.stop = nil
	}
}
