package core

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OrderForSplit returns the roster in presentation order: the self-flagged
// member first, everyone else by name ascending under locale collation.
// Should more than one member carry the self flag, they are ordered among
// themselves by name, so the result is deterministic either way.
func OrderForSplit(friends []Friend) []Friend {
	ordered := make([]Friend, len(friends))
	copy(ordered, friends)
	if len(ordered) < 2 {
		return ordered
	}

	c := collate.New(language.English)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsSelf != ordered[j].IsSelf {
			return ordered[i].IsSelf
		}
		return c.CompareString(ordered[i].Name, ordered[j].Name) < 0
	})
	return ordered
}

// SelfFriend returns the roster member flagged as the current user, or false
// when no member carries the flag.
func SelfFriend(friends []Friend) (Friend, bool) {
	for _, f := range friends {
		if f.IsSelf {
			return f, true
		}
	}
	return Friend{}, false
}
