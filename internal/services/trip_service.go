package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"tripledger/internal/core"
	"tripledger/internal/notify"
	"tripledger/internal/storage"
)

// TripService manages the trip list.
type TripService struct {
	store    storage.Store
	notifier notify.Notifier
	mu       *sync.Mutex
}

// Create validates and stores a new trip. The ID is assigned here.
func (s *TripService) Create(ctx context.Context, trip core.Trip) (core.Trip, error) {
	if err := trip.Validate(); err != nil {
		s.notifier.Notify(ctx, err.Error(), notify.VariantError)
		return core.Trip{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var trips []core.Trip
	if err := s.store.Get(ctx, storage.KeyTrips, &trips); err != nil {
		return core.Trip{}, fmt.Errorf("load trips: %w", err)
	}

	trip.ID = uuid.NewString()
	trips = append(trips, trip)
	if err := s.store.Set(ctx, storage.KeyTrips, trips); err != nil {
		s.notifier.Notify(ctx, "Failed to save trip", notify.VariantError)
		return core.Trip{}, fmt.Errorf("save trips: %w", err)
	}

	s.notifier.Notify(ctx, "Trip added successfully!", notify.VariantSuccess)
	return trip, nil
}

// List returns every stored trip.
func (s *TripService) List(ctx context.Context) ([]core.Trip, error) {
	var trips []core.Trip
	if err := s.store.Get(ctx, storage.KeyTrips, &trips); err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}
	return trips, nil
}

// Get returns one trip by id.
func (s *TripService) Get(ctx context.Context, tripID string) (core.Trip, error) {
	var trips []core.Trip
	if err := s.store.Get(ctx, storage.KeyTrips, &trips); err != nil {
		return core.Trip{}, fmt.Errorf("load trips: %w", err)
	}
	for _, t := range trips {
		if t.ID == tripID {
			return t, nil
		}
	}
	return core.Trip{}, fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
}

// Delete removes a trip and cascades to everything hanging off it: the
// trip's expenses and roster entries are filtered out of their lists, its
// checklist and itinerary documents are dropped from their maps. Orphaned
// child records never survive a trip.
func (s *TripService) Delete(ctx context.Context, tripID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var trips []core.Trip
	if err := s.store.Get(ctx, storage.KeyTrips, &trips); err != nil {
		return fmt.Errorf("load trips: %w", err)
	}

	remaining := trips[:0:0]
	for _, t := range trips {
		if t.ID != tripID {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(trips) {
		return fmt.Errorf("trip %s: %w", tripID, ErrNotFound)
	}

	if err := s.store.Set(ctx, storage.KeyTrips, remaining); err != nil {
		s.notifier.Notify(ctx, "Failed to delete trip", notify.VariantError)
		return fmt.Errorf("save trips: %w", err)
	}

	s.cascade(ctx, tripID)
	s.notifier.Notify(ctx, "Trip deleted", notify.VariantSuccess)
	return nil
}

// cascade removes a deleted trip's child records. The trip itself is
// already gone, so cascade problems are logged rather than failing the
// delete; a later cascade for the same id is a no-op.
func (s *TripService) cascade(ctx context.Context, tripID string) {
	var expenses []core.Expense
	if err := s.store.Get(ctx, storage.KeyExpenses, &expenses); err != nil {
		slog.ErrorContext(ctx, "Cascade could not load expenses", "tripId", tripID, "error", err)
	} else {
		kept := expenses[:0:0]
		for _, e := range expenses {
			if e.TripID != tripID {
				kept = append(kept, e)
			}
		}
		if len(kept) != len(expenses) {
			if err := s.store.Set(ctx, storage.KeyExpenses, kept); err != nil {
				slog.ErrorContext(ctx, "Cascade could not save expenses", "tripId", tripID, "error", err)
			}
		}
	}

	var friends []core.Friend
	if err := s.store.Get(ctx, storage.KeyFriends, &friends); err != nil {
		slog.ErrorContext(ctx, "Cascade could not load friends", "tripId", tripID, "error", err)
	} else {
		kept := friends[:0:0]
		for _, f := range friends {
			if f.TripID != tripID {
				kept = append(kept, f)
			}
		}
		if len(kept) != len(friends) {
			if err := s.store.Set(ctx, storage.KeyFriends, kept); err != nil {
				slog.ErrorContext(ctx, "Cascade could not save friends", "tripId", tripID, "error", err)
			}
		}
	}

	s.dropFromMap(ctx, storage.KeyChecklists, tripID)
	s.dropFromMap(ctx, storage.KeyItineraries, tripID)
}

func (s *TripService) dropFromMap(ctx context.Context, key, tripID string) {
	byTrip := map[string]any{}
	if err := s.store.Get(ctx, key, &byTrip); err != nil {
		slog.ErrorContext(ctx, "Cascade could not load document", "key", key, "tripId", tripID, "error", err)
		return
	}
	if _, ok := byTrip[tripID]; !ok {
		return
	}
	delete(byTrip, tripID)
	if err := s.store.Set(ctx, key, byTrip); err != nil {
		slog.ErrorContext(ctx, "Cascade could not save document", "key", key, "tripId", tripID, "error", err)
	}
}
