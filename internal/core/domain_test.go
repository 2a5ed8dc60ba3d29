package core

import (
	"strings"
	"testing"
	"time"
)

func TestTripValidate(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		trip    Trip
		wantErr string
	}{
		{name: "valid", trip: Trip{Destination: "Goa", StartDate: start, EndDate: end, Budget: 1000}},
		{name: "valid without budget", trip: Trip{Destination: "Goa", StartDate: start, EndDate: end}},
		{name: "missing destination", trip: Trip{StartDate: start, EndDate: end}, wantErr: "Destination is required"},
		{name: "missing dates", trip: Trip{Destination: "Goa"}, wantErr: "Start date is required, End date is required"},
		{name: "end before start", trip: Trip{Destination: "Goa", StartDate: end, EndDate: start}, wantErr: "End date must be after start date"},
		{name: "negative budget", trip: Trip{Destination: "Goa", StartDate: start, EndDate: end, Budget: -5}, wantErr: "valid budget amount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.trip.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected ok, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestFriendValidate(t *testing.T) {
	good := Friend{Name: "Asha", Relationship: RelationshipSingle, TripID: "trip-1"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bad := Friend{Relationship: "Roommates"}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"Name is required", "Relationship type is required", "Trip is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestFriendDisplayLabel(t *testing.T) {
	cases := []struct {
		friend Friend
		want   string
	}{
		{Friend{Name: "Asha", Relationship: RelationshipSingle}, "Asha"},
		{Friend{Name: "Asha", Relationship: RelationshipCouple, PartnerName: "Ravi"}, "Asha & Ravi"},
		{Friend{Name: "Asha", Relationship: RelationshipFamily, PartnerName: "Ravi"}, "Asha's Family"},
		{Friend{Name: "Asha", Relationship: RelationshipCouple}, "Asha"},
	}
	for _, tc := range cases {
		if got := tc.friend.DisplayLabel(); got != tc.want {
			t.Errorf("DisplayLabel(%+v) = %q, want %q", tc.friend, got, tc.want)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if Category("Bribes").Valid() {
		t.Error("unexpected valid unknown category")
	}
	if Category("").Valid() {
		t.Error("empty category should be invalid")
	}
}
