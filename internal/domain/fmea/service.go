package fmea

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHighRiskThreshold is the cutoff for the high-risk filter when the
// caller doesn't supply one.
const DefaultHighRiskThreshold = 100

// Service owns the working copy of the active project's FMEA items and
// mirrors it into the store on every mutation. The working copy stays
// authoritative when a mirror write fails; failures are logged and retried
// by the next persist.
type Service struct {
	mu         sync.Mutex
	items      []Item
	store      ItemStore
	thresholds RiskThresholds
	autoSave   bool
	logger     *slog.Logger
}

// NewService creates an item manager backed by the given store.
func NewService(store ItemStore, thresholds RiskThresholds, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:      store,
		thresholds: thresholds,
		logger:     logger,
	}
}

// LoadFromStore replaces the working copy with the persisted copy.
func (s *Service) LoadFromStore(ctx context.Context) error {
	items, err := s.store.LoadItems(ctx)
	if err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// SetItems replaces the working copy without persisting. Used when the
// coordinator switches the active project.
func (s *Service) SetItems(items []Item) {
	s.mu.Lock()
	s.items = append([]Item(nil), items...)
	s.mu.Unlock()
}

// SetThresholds swaps the risk banding table, normally after a preference
// change.
func (s *Service) SetThresholds(t RiskThresholds) {
	s.mu.Lock()
	s.thresholds = t
	s.mu.Unlock()
}

// Thresholds returns the active risk banding table.
func (s *Service) Thresholds() RiskThresholds {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thresholds
}

// Create builds an item with defaults, computes its RPN, appends it to the
// working copy and persists the list.
func (s *Service) Create(ctx context.Context, req CreateRequest) *Item {
	now := time.Now()
	item := Item{
		ID:                 uuid.NewString(),
		Component:          req.Component,
		Function:           req.Function,
		FailureMode:        req.FailureMode,
		Effects:            req.Effects,
		Causes:             req.Causes,
		CurrentControls:    req.CurrentControls,
		Severity:           defaultRating(req.Severity),
		Occurrence:         defaultRating(req.Occurrence),
		Detection:          defaultRating(req.Detection),
		RecommendedActions: req.RecommendedActions,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	item.ComputeRPN()

	s.mu.Lock()
	s.items = append(s.items, item)
	snapshot := append([]Item(nil), s.items...)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return &item
}

// Update merges a patch into the item, recomputes the RPN unconditionally
// and persists. Returns ErrItemNotFound for an unknown id.
func (s *Service) Update(ctx context.Context, id string, patch ItemPatch) (*Item, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrItemNotFound
	}

	item := &s.items[idx]
	patch.apply(item)
	item.ComputeRPN()
	item.UpdatedAt = time.Now()
	updated := *item
	snapshot := append([]Item(nil), s.items...)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return &updated, nil
}

// Delete removes the item by id and persists the remaining list. Returns
// the removed item, or ErrItemNotFound for an unknown id.
func (s *Service) Delete(ctx context.Context, id string) (*Item, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrItemNotFound
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	snapshot := append([]Item(nil), s.items...)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return &removed, nil
}

// All returns a copy of the working copy.
func (s *Service) All() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// ByID returns the item with the given id, or ErrItemNotFound.
func (s *Service) ByID(id string) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		item := s.items[idx]
		return &item, nil
	}
	return nil, ErrItemNotFound
}

// Search matches the query case-insensitively against component, function,
// failure mode, effects and causes. No matches is an empty list, not an
// error.
func (s *Service) Search(query string) []Item {
	term := strings.ToLower(query)
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []Item{}
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Component), term) ||
			strings.Contains(strings.ToLower(item.Function), term) ||
			strings.Contains(strings.ToLower(item.FailureMode), term) ||
			strings.Contains(strings.ToLower(item.Effects), term) ||
			strings.Contains(strings.ToLower(item.Causes), term) {
			matches = append(matches, item)
		}
	}
	return matches
}

// ByComponent matches the component name only, case-insensitive substring.
func (s *Service) ByComponent(component string) []Item {
	term := strings.ToLower(component)
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []Item{}
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Component), term) {
			matches = append(matches, item)
		}
	}
	return matches
}

// HighRisk returns items with RPN strictly greater than the threshold.
// A non-positive threshold means DefaultHighRiskThreshold.
func (s *Service) HighRisk(threshold int) []Item {
	if threshold <= 0 {
		threshold = DefaultHighRiskThreshold
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := []Item{}
	for _, item := range s.items {
		if item.RPN > threshold {
			matches = append(matches, item)
		}
	}
	return matches
}

// Statistics summarizes the working copy against the active thresholds.
func (s *Service) Statistics() Statistics {
	s.mu.Lock()
	items := append([]Item(nil), s.items...)
	thresholds := s.thresholds
	s.mu.Unlock()
	return ComputeStatistics(items, thresholds)
}

// ClearAll empties the working copy and persists the empty state.
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	if err := s.store.SaveItems(ctx, []Item{}); err != nil {
		return fmt.Errorf("persisting cleared items: %w", err)
	}
	return nil
}

// Import appends records that carry a component, function and failure mode,
// assigning missing ids and timestamps and recomputing RPNs. Malformed
// individual records are skipped, never fatal.
func (s *Service) Import(ctx context.Context, incoming []Item) ImportResult {
	now := time.Now()
	var valid []Item
	for _, item := range incoming {
		if item.Component == "" || item.Function == "" || item.FailureMode == "" {
			continue
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		item.ComputeRPN()
		valid = append(valid, item)
	}

	s.mu.Lock()
	s.items = append(s.items, valid...)
	snapshot := append([]Item(nil), s.items...)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	return ImportResult{Imported: len(valid), Skipped: len(incoming) - len(valid)}
}

// Export returns the working copy plus a timestamp, format version and the
// current statistics snapshot.
func (s *Service) Export() ExportBundle {
	return ExportBundle{
		Items:      s.All(),
		ExportedAt: time.Now(),
		Version:    ExportVersion,
		Statistics: s.Statistics(),
	}
}

// RecalculateAll re-derives every RPN and persists if anything changed.
// Returns the number of items whose RPN was stale.
func (s *Service) RecalculateAll(ctx context.Context) int {
	s.mu.Lock()
	changed := 0
	now := time.Now()
	for i := range s.items {
		rpn := s.items[i].Severity * s.items[i].Occurrence * s.items[i].Detection
		if s.items[i].RPN != rpn {
			s.items[i].RPN = rpn
			s.items[i].UpdatedAt = now
			changed++
		}
	}
	snapshot := append([]Item(nil), s.items...)
	s.mu.Unlock()

	if changed > 0 {
		s.persist(ctx, snapshot)
	}
	return changed
}

// SetAutoSave wires this manager's flush into the store's auto-save timer,
// or detaches it.
func (s *Service) SetAutoSave(enabled bool) {
	s.mu.Lock()
	s.autoSave = enabled
	s.mu.Unlock()

	if enabled {
		s.store.StartAutoSave(func() {
			if err := s.Flush(context.Background()); err != nil {
				s.logger.Warn("auto-save flush failed", "error", err)
			}
		})
	} else {
		s.store.StopAutoSave()
	}
}

// Flush persists the working copy.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	snapshot := append([]Item(nil), s.items...)
	s.mu.Unlock()
	if err := s.store.SaveItems(ctx, snapshot); err != nil {
		return fmt.Errorf("flushing items: %w", err)
	}
	return nil
}

// DecodeItems parses an import payload, accepting either a bare item array
// or an object wrapping it in an "items" field.
func DecodeItems(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var wrapped struct {
		Items []Item `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: payload is neither an item array nor an items object", ErrInvalidInput)
	}
	if wrapped.Items == nil {
		return nil, fmt.Errorf("%w: missing items field", ErrInvalidInput)
	}
	return wrapped.Items, nil
}

func (s *Service) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) persist(ctx context.Context, snapshot []Item) {
	if err := s.store.SaveItems(ctx, snapshot); err != nil {
		s.logger.Warn("persisting items failed, working copy retained", "error", err)
	}
}

func defaultRating(v int) int {
	if v == 0 {
		return 1
	}
	return v
}
