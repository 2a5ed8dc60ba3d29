package services

import (
	"context"
	"errors"
	"testing"

	"tripledger/internal/core"
)

func TestFriendAddFirstIsSelf(t *testing.T) {
	svc, _ := newTestServices(t)
	trip := seedTrip(t, svc, "Goa", 0)

	first := seedFriend(t, svc, trip.ID, "Asha")
	second := seedFriend(t, svc, trip.ID, "Bilal")

	if !first.IsSelf {
		t.Error("first roster member should be marked self")
	}
	if second.IsSelf {
		t.Error("later members must not be marked self")
	}
}

func TestFriendAddFirstPerTrip(t *testing.T) {
	svc, _ := newTestServices(t)
	tripA := seedTrip(t, svc, "Goa", 0)
	tripB := seedTrip(t, svc, "Manali", 0)

	seedFriend(t, svc, tripA.ID, "Asha")
	firstOfB := seedFriend(t, svc, tripB.ID, "Bilal")

	if !firstOfB.IsSelf {
		t.Error("the self flag is scoped per trip; each trip's first member gets it")
	}
}

func TestFriendAddRejectsInvalid(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Friends.Add(context.Background(), core.Friend{Name: "   "})
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestFriendSetSelfIsExclusive(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	trip := seedTrip(t, svc, "Goa", 0)

	seedFriend(t, svc, trip.ID, "Asha")
	bilal := seedFriend(t, svc, trip.ID, "Bilal")
	seedFriend(t, svc, trip.ID, "Chitra")

	if err := svc.Friends.SetSelf(ctx, trip.ID, bilal.ID); err != nil {
		t.Fatalf("SetSelf failed: %v", err)
	}

	roster, err := svc.Friends.ListByTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("ListByTrip failed: %v", err)
	}
	for _, f := range roster {
		want := f.ID == bilal.ID
		if f.IsSelf != want {
			t.Errorf("%s: IsSelf = %v, want %v", f.Name, f.IsSelf, want)
		}
	}
}

func TestFriendSetSelfDoesNotTouchOtherTrips(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	tripA := seedTrip(t, svc, "Goa", 0)
	tripB := seedTrip(t, svc, "Manali", 0)

	selfOfA := seedFriend(t, svc, tripA.ID, "Asha")
	seedFriend(t, svc, tripB.ID, "Bilal")
	devi := seedFriend(t, svc, tripB.ID, "Devi")

	if err := svc.Friends.SetSelf(ctx, tripB.ID, devi.ID); err != nil {
		t.Fatalf("SetSelf failed: %v", err)
	}

	rosterA, _ := svc.Friends.ListByTrip(ctx, tripA.ID)
	if len(rosterA) != 1 || !rosterA[0].IsSelf || rosterA[0].ID != selfOfA.ID {
		t.Errorf("other trip's self flag must be untouched, got %+v", rosterA)
	}
}

func TestFriendSetSelfMissing(t *testing.T) {
	svc, _ := newTestServices(t)
	trip := seedTrip(t, svc, "Goa", 0)
	seedFriend(t, svc, trip.ID, "Asha")

	err := svc.Friends.SetSelf(context.Background(), trip.ID, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFriendDelete(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	trip := seedTrip(t, svc, "Goa", 0)

	seedFriend(t, svc, trip.ID, "Asha")
	bilal := seedFriend(t, svc, trip.ID, "Bilal")

	if err := svc.Friends.Delete(ctx, trip.ID, bilal.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	roster, _ := svc.Friends.ListByTrip(ctx, trip.ID)
	if len(roster) != 1 || roster[0].Name != "Asha" {
		t.Errorf("got %+v, want only Asha", roster)
	}

	if err := svc.Friends.Delete(ctx, trip.ID, bilal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestFriendOrderedPutsSelfFirst(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()
	trip := seedTrip(t, svc, "Goa", 0)

	seedFriend(t, svc, trip.ID, "Zara")
	seedFriend(t, svc, trip.ID, "Asha")
	mihir := seedFriend(t, svc, trip.ID, "Mihir")

	if err := svc.Friends.SetSelf(ctx, trip.ID, mihir.ID); err != nil {
		t.Fatalf("SetSelf failed: %v", err)
	}

	ordered, err := svc.Friends.Ordered(ctx, trip.ID)
	if err != nil {
		t.Fatalf("Ordered failed: %v", err)
	}
	got := make([]string, len(ordered))
	for i, f := range ordered {
		got[i] = f.Name
	}
	want := []string{"Mihir", "Asha", "Zara"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got order %v, want %v", got, want)
		}
	}
}
