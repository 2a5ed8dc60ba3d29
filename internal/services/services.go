// Package services orchestrates the ledger's business operations over the
// keyed store and the notifier. Every mutation runs as one read-modify-write
// critical section under a mutex shared by all services, so concurrent
// requests never interleave their writes to the same document.
package services

import (
	"errors"
	"sync"

	"tripledger/internal/notify"
	"tripledger/internal/storage"
)

// ErrNotFound marks a lookup whose target record does not exist.
var ErrNotFound = errors.New("not found")

// Services bundles every service over one store, one notifier and one
// write lock.
type Services struct {
	Trips       *TripService
	Friends     *FriendService
	Expenses    *ExpenseService
	Checklists  *ChecklistService
	Itineraries *ItineraryService
}

func New(store storage.Store, notifier notify.Notifier) *Services {
	mu := &sync.Mutex{}
	return &Services{
		Trips:       &TripService{store: store, notifier: notifier, mu: mu},
		Friends:     &FriendService{store: store, notifier: notifier, mu: mu},
		Expenses:    &ExpenseService{store: store, notifier: notifier, mu: mu},
		Checklists:  &ChecklistService{store: store, notifier: notifier, mu: mu},
		Itineraries: &ItineraryService{store: store, notifier: notifier, mu: mu},
	}
}
