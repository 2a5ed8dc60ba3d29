package core

import "sort"

const dayFormat = "2006-01-02"

type (
	// DateGroup collects one calendar day's expenses with their total of
	// personal shares.
	DateGroup struct {
		Date     string    `json:"date"`
		Expenses []Expense `json:"expenses"`
		Total    float64   `json:"total"`
	}

	// CategoryGroup collects one category's expenses with their total.
	CategoryGroup struct {
		Category Category  `json:"category"`
		Expenses []Expense `json:"expenses"`
		Total    float64   `json:"total"`
	}

	// SplitEntry is one resolved line of a split breakdown.
	SplitEntry struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
		IsSelf bool    `json:"isSelf"`
	}
)

// GroupByDate buckets expenses by calendar day, newest day first. Group
// totals sum the stored personal shares, so they reconcile with the grand
// total of Expense.Amount over the input.
func GroupByDate(expenses []Expense) []DateGroup {
	byDay := make(map[string]*DateGroup)
	for _, e := range expenses {
		day := e.Date.Format(dayFormat)
		g, ok := byDay[day]
		if !ok {
			g = &DateGroup{Date: day}
			byDay[day] = g
		}
		g.Expenses = append(g.Expenses, e)
		g.Total += e.Amount
	}

	groups := make([]DateGroup, 0, len(byDay))
	for _, g := range byDay {
		groups = append(groups, *g)
	}
	// Day keys are ISO dates, so string order is chronological.
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}

// GroupByCategory buckets expenses by category in the fixed declaration
// order. Categories with no expenses are omitted; unknown categories read
// back from the store land at the end in first-seen order.
func GroupByCategory(expenses []Expense) []CategoryGroup {
	byCategory := make(map[Category]*CategoryGroup)
	var unknownOrder []Category
	for _, e := range expenses {
		g, ok := byCategory[e.Category]
		if !ok {
			g = &CategoryGroup{Category: e.Category}
			byCategory[e.Category] = g
			if !e.Category.Valid() {
				unknownOrder = append(unknownOrder, e.Category)
			}
		}
		g.Expenses = append(g.Expenses, e)
		g.Total += e.Amount
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, c := range Categories {
		if g, ok := byCategory[c]; ok {
			groups = append(groups, *g)
		}
	}
	for _, c := range unknownOrder {
		groups = append(groups, *byCategory[c])
	}
	return groups
}

// RenderSplitDetail resolves a split breakdown against the roster for
// display. Malformed details and entries whose member no longer exists or
// whose amount is missing are skipped rather than failing; when nothing
// survives the result is empty, which callers treat as "no data". The
// surviving entries are ordered self first.
func RenderSplitDetail(details *SplitDetails, friends []Friend) []SplitEntry {
	if details == nil || len(details.Friends) == 0 || details.SplitAmounts == nil {
		return nil
	}

	var entries []SplitEntry
	for _, id := range details.Friends {
		amount, ok := details.SplitAmounts[id]
		if !ok {
			continue
		}
		member, ok := findFriend(friends, id)
		if !ok {
			continue
		}
		entries = append(entries, SplitEntry{Name: member.Name, Amount: amount, IsSelf: member.IsSelf})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].IsSelf && !entries[j].IsSelf
	})
	return entries
}

// findFriend resolves a roster member by id.
func findFriend(friends []Friend, id string) (Friend, bool) {
	for _, f := range friends {
		if f.ID == id {
			return f, true
		}
	}
	return Friend{}, false
}

// HasSplitDetails reports whether an expense carries a renderable split:
// a non-none type with at least one member and one recorded amount. It
// gates the "view split" affordance.
func HasSplitDetails(e Expense) bool {
	d := e.SplitDetails
	return d != nil && d.Type != SplitNone && len(d.Friends) > 0 && len(d.SplitAmounts) > 0
}
