// Package storage provides the keyed document store the ledger persists
// into: one JSON document per logical collection.
package storage

import "context"

// Collection keys. Trips, expenses and friends are flat lists; checklists
// and itineraries are maps keyed by trip id.
const (
	KeyTrips       = "trips"
	KeyExpenses    = "expenses"
	KeyFriends     = "friends"
	KeyChecklists  = "trip_checklists"
	KeyItineraries = "trip_itineraries"
)

// Store is a keyed JSON document store.
//
// Get decodes the document at key into dest and leaves dest untouched when
// the key is absent; callers pre-fill dest with their default. A stored
// document that no longer decodes into dest degrades the same way: the
// default stands, the problem is logged, no error surfaces. Errors are
// reserved for the store itself being unavailable.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}
