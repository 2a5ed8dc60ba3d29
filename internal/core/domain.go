package core

import (
	"strings"
	"time"
)

// Category classifies an expense. The set is fixed: the expense form, the
// aggregator and the stored records all share these six values.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transportation"
	CategoryAccommodation Category = "Accommodation"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryMiscellaneous Category = "Miscellaneous"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryAccommodation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryMiscellaneous,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SplitType selects how an expense total is divided across the roster.
type SplitType string

const (
	SplitNone  SplitType = "none"
	SplitEqual SplitType = "equal"
	SplitValue SplitType = "value"
)

// Relationship describes how a roster member travels.
type Relationship string

const (
	RelationshipSingle       Relationship = "Single"
	RelationshipCouple       Relationship = "Couple"
	RelationshipFamily       Relationship = "Family"
	RelationshipFriendsGroup Relationship = "Friends Group"
)

func (r Relationship) Valid() bool {
	switch r {
	case RelationshipSingle, RelationshipCouple, RelationshipFamily, RelationshipFriendsGroup:
		return true
	}
	return false
}

type (
	// Trip is the top-level planning unit. A Budget of zero means no budget
	// has been set; the budget evaluator reports nothing in that case.
	Trip struct {
		ID          string    `json:"id"`
		Destination string    `json:"destination"`
		StartDate   time.Time `json:"startDate"`
		EndDate     time.Time `json:"endDate"`
		Budget      float64   `json:"budget,omitempty"`
	}

	// Friend is one member of a trip's roster. At most one member per trip
	// carries IsSelf; the friend service's SetSelf is the only writer of the
	// flag and keeps it exclusive.
	Friend struct {
		ID           string       `json:"id"`
		Name         string       `json:"name"`
		IsSelf       bool         `json:"isSelf"`
		Relationship Relationship `json:"relationship"`
		PartnerName  string       `json:"partnerName,omitempty"`
		TripID       string       `json:"tripId"`
	}

	// SplitDetails records how an expense's full total was divided.
	// Absent (nil) for unsplit expenses.
	SplitDetails struct {
		Type         SplitType          `json:"type"`
		Friends      []string           `json:"friends"`
		SplitAmounts map[string]float64 `json:"splitAmounts"`
	}

	// Expense is one persisted expense record. Amount is always the payer's
	// own share of the bill, never the entered total; the full division
	// lives in SplitDetails. Records are immutable after creation except
	// for deletion.
	Expense struct {
		ID           string        `json:"id"`
		TripID       string        `json:"tripId"`
		Description  string        `json:"description"`
		Amount       float64       `json:"amount"`
		Date         time.Time     `json:"date"`
		Category     Category      `json:"category"`
		PaidBy       string        `json:"paidBy,omitempty"`
		SplitDetails *SplitDetails `json:"splitDetails,omitempty"`
	}

	// ChecklistItem is one packing/preparation task of a trip.
	ChecklistItem struct {
		ID        string `json:"id"`
		Task      string `json:"task"`
		Completed bool   `json:"completed"`
	}

	// Activity is one itinerary entry of a trip.
	Activity struct {
		ID          string       `json:"id"`
		Title       string       `json:"title"`
		Description string       `json:"description,omitempty"`
		Type        ActivityType `json:"type"`
		Location    string       `json:"location,omitempty"`
		StartTime   time.Time    `json:"startTime"`
		EndTime     time.Time    `json:"endTime,omitempty"`
	}
)

// ActivityType classifies an itinerary entry.
type ActivityType string

const (
	ActivityTransportation ActivityType = "Transportation"
	ActivityAccommodation  ActivityType = "Accommodation"
	ActivitySightseeing    ActivityType = "Sightseeing"
	ActivityDining         ActivityType = "Dining"
	ActivityGeneric        ActivityType = "Activity"
)

// ValidationError carries every problem found while validating one
// submission. Error renders them as a single combined message.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

// Validate checks a trip submission. All problems are reported together.
func (t Trip) Validate() error {
	var problems []string
	if strings.TrimSpace(t.Destination) == "" {
		problems = append(problems, "Destination is required")
	}
	if t.StartDate.IsZero() {
		problems = append(problems, "Start date is required")
	}
	if t.EndDate.IsZero() {
		problems = append(problems, "End date is required")
	}
	if !t.StartDate.IsZero() && !t.EndDate.IsZero() && t.StartDate.After(t.EndDate) {
		problems = append(problems, "End date must be after start date")
	}
	if t.Budget < 0 {
		problems = append(problems, "Please enter a valid budget amount")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Validate checks a roster submission.
func (f Friend) Validate() error {
	var problems []string
	if strings.TrimSpace(f.Name) == "" {
		problems = append(problems, "Name is required")
	}
	if !f.Relationship.Valid() {
		problems = append(problems, "Relationship type is required")
	}
	if f.TripID == "" {
		problems = append(problems, "Trip is required")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// DisplayLabel renders the roster chip text: couples show both names,
// families show the representative's household.
func (f Friend) DisplayLabel() string {
	switch {
	case f.Relationship == RelationshipCouple && f.PartnerName != "":
		return f.Name + " & " + f.PartnerName
	case f.Relationship == RelationshipFamily && f.PartnerName != "":
		return f.Name + "'s Family"
	}
	return f.Name
}
