package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"tripledger/internal/core"
	"tripledger/internal/notify"
	"tripledger/internal/storage"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

type recordedEvent struct {
	Message string
	Variant notify.Variant
}

func (r *recordingNotifier) Notify(_ context.Context, message string, variant notify.Variant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Message: message, Variant: variant})
}

func (r *recordingNotifier) last(t *testing.T) recordedEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		t.Fatal("expected a notification, got none")
	}
	return r.events[len(r.events)-1]
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func newTestServices(t *testing.T) (*Services, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	return New(storage.NewMemoryStore(), notifier), notifier
}

func seedTrip(t *testing.T, svc *Services, destination string, budget float64) core.Trip {
	t.Helper()
	trip, err := svc.Trips.Create(context.Background(), core.Trip{
		Destination: destination,
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Budget:      budget,
	})
	if err != nil {
		t.Fatalf("seed trip failed: %v", err)
	}
	return trip
}

func seedFriend(t *testing.T, svc *Services, tripID, name string) core.Friend {
	t.Helper()
	friend, err := svc.Friends.Add(context.Background(), core.Friend{
		Name:         name,
		Relationship: core.RelationshipSingle,
		TripID:       tripID,
	})
	if err != nil {
		t.Fatalf("seed friend %s failed: %v", name, err)
	}
	return friend
}
