package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tripledger/internal/core"
	"tripledger/internal/notify"
	"tripledger/internal/storage"
)

// ChecklistService manages per-trip packing and preparation tasks. All
// checklists live in one map document keyed by trip id.
type ChecklistService struct {
	store    storage.Store
	notifier notify.Notifier
	mu       *sync.Mutex
}

// List returns a trip's checklist in stored order.
func (s *ChecklistService) List(ctx context.Context, tripID string) ([]core.ChecklistItem, error) {
	byTrip := map[string][]core.ChecklistItem{}
	if err := s.store.Get(ctx, storage.KeyChecklists, &byTrip); err != nil {
		return nil, fmt.Errorf("load checklists: %w", err)
	}
	items := byTrip[tripID]
	if items == nil {
		items = []core.ChecklistItem{}
	}
	return items, nil
}

// AddTask appends a new task to a trip's checklist.
func (s *ChecklistService) AddTask(ctx context.Context, tripID, task string) (core.ChecklistItem, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		err := &core.ValidationError{Problems: []string{"Task is required"}}
		s.notifier.Notify(ctx, err.Error(), notify.VariantError)
		return core.ChecklistItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byTrip := map[string][]core.ChecklistItem{}
	if err := s.store.Get(ctx, storage.KeyChecklists, &byTrip); err != nil {
		return core.ChecklistItem{}, fmt.Errorf("load checklists: %w", err)
	}

	item := core.ChecklistItem{ID: uuid.NewString(), Task: task}
	byTrip[tripID] = append(byTrip[tripID], item)
	if err := s.store.Set(ctx, storage.KeyChecklists, byTrip); err != nil {
		s.notifier.Notify(ctx, "Failed to save task", notify.VariantError)
		return core.ChecklistItem{}, fmt.Errorf("save checklists: %w", err)
	}

	s.notifier.Notify(ctx, "Task added", notify.VariantSuccess)
	return item, nil
}

// ToggleTask flips one task's completed state and returns the new state.
func (s *ChecklistService) ToggleTask(ctx context.Context, tripID, taskID string) (core.ChecklistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTrip := map[string][]core.ChecklistItem{}
	if err := s.store.Get(ctx, storage.KeyChecklists, &byTrip); err != nil {
		return core.ChecklistItem{}, fmt.Errorf("load checklists: %w", err)
	}

	items := byTrip[tripID]
	for i := range items {
		if items[i].ID != taskID {
			continue
		}
		items[i].Completed = !items[i].Completed
		byTrip[tripID] = items
		if err := s.store.Set(ctx, storage.KeyChecklists, byTrip); err != nil {
			s.notifier.Notify(ctx, "Failed to update task", notify.VariantError)
			return core.ChecklistItem{}, fmt.Errorf("save checklists: %w", err)
		}
		return items[i], nil
	}
	return core.ChecklistItem{}, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
}

// DeleteTask removes one task from a trip's checklist.
func (s *ChecklistService) DeleteTask(ctx context.Context, tripID, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTrip := map[string][]core.ChecklistItem{}
	if err := s.store.Get(ctx, storage.KeyChecklists, &byTrip); err != nil {
		return fmt.Errorf("load checklists: %w", err)
	}

	items := byTrip[tripID]
	remaining := items[:0:0]
	for _, item := range items {
		if item.ID != taskID {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(items) {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}

	byTrip[tripID] = remaining
	if err := s.store.Set(ctx, storage.KeyChecklists, byTrip); err != nil {
		s.notifier.Notify(ctx, "Failed to delete task", notify.VariantError)
		return fmt.Errorf("save checklists: %w", err)
	}

	s.notifier.Notify(ctx, "Task removed", notify.VariantSuccess)
	return nil
}

// Progress reports how many of a trip's tasks are done.
func (s *ChecklistService) Progress(ctx context.Context, tripID string) (completed, total int, err error) {
	items, err := s.List(ctx, tripID)
	if err != nil {
		return 0, 0, err
	}
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return completed, len(items), nil
}
