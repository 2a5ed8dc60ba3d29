package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tripledger/internal/core"
	"tripledger/internal/notify"
	"tripledger/internal/storage"
)

// FriendService manages trip rosters. It is the only writer of the IsSelf
// flag and keeps the flag exclusive per trip.
type FriendService struct {
	store    storage.Store
	notifier notify.Notifier
	mu       *sync.Mutex
}

// Add validates and stores a roster member. The first member of a trip is
// marked as the current user automatically so splits and payer resolution
// work without an extra step.
func (s *FriendService) Add(ctx context.Context, friend core.Friend) (core.Friend, error) {
	if err := friend.Validate(); err != nil {
		s.notifier.Notify(ctx, err.Error(), notify.VariantError)
		return core.Friend{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var friends []core.Friend
	if err := s.store.Get(ctx, storage.KeyFriends, &friends); err != nil {
		return core.Friend{}, fmt.Errorf("load friends: %w", err)
	}

	first := true
	for _, f := range friends {
		if f.TripID == friend.TripID {
			first = false
			break
		}
	}

	friend.ID = uuid.NewString()
	friend.IsSelf = first
	friends = append(friends, friend)
	if err := s.store.Set(ctx, storage.KeyFriends, friends); err != nil {
		s.notifier.Notify(ctx, "Failed to save friend", notify.VariantError)
		return core.Friend{}, fmt.Errorf("save friends: %w", err)
	}

	s.notifier.Notify(ctx, "Friend added successfully!", notify.VariantSuccess)
	return friend, nil
}

// ListByTrip returns a trip's roster in stored order.
func (s *FriendService) ListByTrip(ctx context.Context, tripID string) ([]core.Friend, error) {
	var friends []core.Friend
	if err := s.store.Get(ctx, storage.KeyFriends, &friends); err != nil {
		return nil, fmt.Errorf("load friends: %w", err)
	}
	roster := make([]core.Friend, 0)
	for _, f := range friends {
		if f.TripID == tripID {
			roster = append(roster, f)
		}
	}
	return roster, nil
}

// Ordered returns a trip's roster in presentation order, self first.
func (s *FriendService) Ordered(ctx context.Context, tripID string) ([]core.Friend, error) {
	roster, err := s.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return core.OrderForSplit(roster), nil
}

// SetSelf marks one roster member as the current user and clears the flag
// on every other member of the same trip in the same write. Running it
// repairs a roster that somehow ended up with zero or several flags.
func (s *FriendService) SetSelf(ctx context.Context, tripID, friendID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var friends []core.Friend
	if err := s.store.Get(ctx, storage.KeyFriends, &friends); err != nil {
		return fmt.Errorf("load friends: %w", err)
	}

	found := false
	for i := range friends {
		if friends[i].TripID != tripID {
			continue
		}
		friends[i].IsSelf = friends[i].ID == friendID
		if friends[i].IsSelf {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("friend %s: %w", friendID, ErrNotFound)
	}

	if err := s.store.Set(ctx, storage.KeyFriends, friends); err != nil {
		s.notifier.Notify(ctx, "Failed to update friend", notify.VariantError)
		return fmt.Errorf("save friends: %w", err)
	}
	return nil
}

// Delete removes a roster member from a trip.
func (s *FriendService) Delete(ctx context.Context, tripID, friendID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var friends []core.Friend
	if err := s.store.Get(ctx, storage.KeyFriends, &friends); err != nil {
		return fmt.Errorf("load friends: %w", err)
	}

	remaining := friends[:0:0]
	for _, f := range friends {
		if f.TripID == tripID && f.ID == friendID {
			continue
		}
		remaining = append(remaining, f)
	}
	if len(remaining) == len(friends) {
		return fmt.Errorf("friend %s: %w", friendID, ErrNotFound)
	}

	if err := s.store.Set(ctx, storage.KeyFriends, remaining); err != nil {
		s.notifier.Notify(ctx, "Failed to delete friend", notify.VariantError)
		return fmt.Errorf("save friends: %w", err)
	}

	s.notifier.Notify(ctx, "Friend removed", notify.VariantSuccess)
	return nil
}
