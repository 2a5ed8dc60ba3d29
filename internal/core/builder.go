package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ExpenseForm is the raw state of one expense submission, before any
// validation. Amount arrives as the text the user typed.
type ExpenseForm struct {
	Description  string             `json:"description"`
	Amount       string             `json:"amount"`
	Date         time.Time          `json:"date"`
	Category     Category           `json:"category"`
	SplitType    SplitType          `json:"splitType"`
	SplitFriends []string           `json:"splitFriends"`
	SplitAmounts map[string]float64 `json:"splitAmounts"`
}

// BuildExpense turns a form submission into a persisted-ready expense
// record. Every check runs; failures accumulate into one ValidationError
// and no record is produced. The function is pure: storing the record is
// the caller's job.
//
// On success the split is resolved authoritatively (equal splits are
// recomputed, value splits keep the manual amounts) and the record's
// Amount becomes the payer's own share. The payer is the self-flagged
// roster member; with no self flag the payer is left empty and Amount
// falls back to the full entered total.
func BuildExpense(form ExpenseForm, friends []Friend, tripID string) (Expense, error) {
	var problems []string

	if strings.TrimSpace(form.Description) == "" {
		problems = append(problems, "Description is required")
	}

	parsed, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
		problems = append(problems, "Please enter a valid amount")
	}

	if form.Date.IsZero() {
		problems = append(problems, "Date is required")
	}

	if form.Category == "" {
		problems = append(problems, "Category is required")
	} else if !form.Category.Valid() {
		problems = append(problems, "Please select a valid category")
	}

	var split SplitValidation
	if form.SplitType != SplitNone {
		split = ValidateSplit(form.SplitType, parsed, form.SplitFriends, form.SplitAmounts, friends)
		if !split.Valid {
			problems = append(problems, split.Err)
		}
	}

	if len(problems) > 0 {
		return Expense{}, &ValidationError{Problems: problems}
	}

	var details *SplitDetails
	if form.SplitType != SplitNone && len(form.SplitFriends) > 0 {
		details = &SplitDetails{
			Type:         form.SplitType,
			Friends:      append([]string(nil), form.SplitFriends...),
			SplitAmounts: split.Amounts,
		}
	}

	var payerID string
	if self, ok := SelfFriend(friends); ok {
		payerID = self.ID
	}

	// The stored amount is the payer's personal share, never the full bill.
	personal := parsed
	if details != nil {
		if share, ok := details.SplitAmounts[payerID]; ok {
			personal = share
		}
	}

	return Expense{
		TripID:       tripID,
		Description:  strings.TrimSpace(form.Description),
		Amount:       personal,
		Date:         form.Date,
		Category:     form.Category,
		PaidBy:       payerID,
		SplitDetails: details,
	}, nil
}
