package visits

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOption string

const (
	// SortSoonest is the default: nearest upcoming date first. Unknown dates
	// normalize to EpochMillisUnknown and end up last.
	SortSoonest  SortOption = "proximas"
	SortFarthest SortOption = "distantes"
	SortNameAsc  SortOption = "az"
	SortNameDesc SortOption = "za"
)

// CompareByDate orders two visits by normalized date. Ties, including pairs
// of unknown dates, compare equal.
func CompareByDate(a, b Visit, ascending bool) int {
	if ascending {
		return cmp.Compare(a.Date.EpochMillis(), b.Date.EpochMillis())
	}
	return cmp.Compare(b.Date.EpochMillis(), a.Date.EpochMillis())
}

// Sort returns a sorted shallow copy; the input slice is never reordered.
// Unrecognized options behave as SortSoonest, matching what the mobile
// screens have always done with a stale picker value.
func Sort(list []Visit, option SortOption) []Visit {
	sorted := slices.Clone(list)
	switch option {
	case SortFarthest:
		slices.SortStableFunc(sorted, func(a, b Visit) int {
			return CompareByDate(a, b, false)
		})
	case SortNameAsc:
		collator := newCollator()
		slices.SortStableFunc(sorted, func(a, b Visit) int {
			return collator.CompareString(a.ElderName, b.ElderName)
		})
	case SortNameDesc:
		collator := newCollator()
		slices.SortStableFunc(sorted, func(a, b Visit) int {
			return collator.CompareString(b.ElderName, a.ElderName)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b Visit) int {
			return CompareByDate(a, b, true)
		})
	}
	return sorted
}

// Collators buffer state between comparisons and are not safe for concurrent
// use, so each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese)
}
