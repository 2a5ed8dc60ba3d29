package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tripledger/internal/core"
	"tripledger/internal/notify"
	"tripledger/internal/storage"
)

// ItineraryService manages per-trip activity schedules. All itineraries
// live in one map document keyed by trip id; each trip's list stays sorted
// by start time.
type ItineraryService struct {
	store    storage.Store
	notifier notify.Notifier
	mu       *sync.Mutex
}

// List returns a trip's activities in start-time order.
func (s *ItineraryService) List(ctx context.Context, tripID string) ([]core.Activity, error) {
	byTrip := map[string][]core.Activity{}
	if err := s.store.Get(ctx, storage.KeyItineraries, &byTrip); err != nil {
		return nil, fmt.Errorf("load itineraries: %w", err)
	}
	activities := byTrip[tripID]
	if activities == nil {
		activities = []core.Activity{}
	}
	return activities, nil
}

// Save inserts a new activity or replaces an existing one by id, then
// re-sorts the trip's list by start time. An activity without an id gets
// one assigned.
func (s *ItineraryService) Save(ctx context.Context, tripID string, activity core.Activity) (core.Activity, error) {
	var problems []string
	if strings.TrimSpace(activity.Title) == "" {
		problems = append(problems, "Title is required")
	}
	if activity.StartTime.IsZero() {
		problems = append(problems, "Start time is required")
	}
	if len(problems) > 0 {
		err := &core.ValidationError{Problems: problems}
		s.notifier.Notify(ctx, err.Error(), notify.VariantError)
		return core.Activity{}, err
	}
	activity.Title = strings.TrimSpace(activity.Title)

	s.mu.Lock()
	defer s.mu.Unlock()

	byTrip := map[string][]core.Activity{}
	if err := s.store.Get(ctx, storage.KeyItineraries, &byTrip); err != nil {
		return core.Activity{}, fmt.Errorf("load itineraries: %w", err)
	}

	activities := byTrip[tripID]
	replaced := false
	if activity.ID != "" {
		for i := range activities {
			if activities[i].ID == activity.ID {
				activities[i] = activity
				replaced = true
				break
			}
		}
	}
	if !replaced {
		if activity.ID == "" {
			activity.ID = uuid.NewString()
		}
		activities = append(activities, activity)
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime.Before(activities[j].StartTime)
	})

	byTrip[tripID] = activities
	if err := s.store.Set(ctx, storage.KeyItineraries, byTrip); err != nil {
		s.notifier.Notify(ctx, "Failed to save activity", notify.VariantError)
		return core.Activity{}, fmt.Errorf("save itineraries: %w", err)
	}

	if replaced {
		s.notifier.Notify(ctx, "Activity updated", notify.VariantSuccess)
	} else {
		s.notifier.Notify(ctx, "Activity added", notify.VariantSuccess)
	}
	return activity, nil
}

// Delete removes one activity from a trip's itinerary.
func (s *ItineraryService) Delete(ctx context.Context, tripID, activityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTrip := map[string][]core.Activity{}
	if err := s.store.Get(ctx, storage.KeyItineraries, &byTrip); err != nil {
		return fmt.Errorf("load itineraries: %w", err)
	}

	activities := byTrip[tripID]
	remaining := activities[:0:0]
	for _, a := range activities {
		if a.ID != activityID {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == len(activities) {
		return fmt.Errorf("activity %s: %w", activityID, ErrNotFound)
	}

	byTrip[tripID] = remaining
	if err := s.store.Set(ctx, storage.KeyItineraries, byTrip); err != nil {
		s.notifier.Notify(ctx, "Failed to delete activity", notify.VariantError)
		return fmt.Errorf("save itineraries: %w", err)
	}

	s.notifier.Notify(ctx, "Activity removed", notify.VariantSuccess)
	return nil
}
