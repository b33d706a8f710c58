package revenue

import "sort"

// Merge combines independent per-source accumulations for the same window
// into one unified set by summing same-category entries. Categories present
// in only one set pass through unchanged.
//
// The merge is additive on purpose: some categories (restaurant revenue in
// particular) are split across two structurally different ledgers, and
// collapsing them would under-count real revenue.
func Merge(sets ...Totals) Totals {
	merged := NewTotals()
	codes := make(map[string]struct{})

	for _, s := range sets {
		for category, total := range s.Categories {
			merged.Categories[category] = merged.Categories[category].Add(total)
		}
		merged.Unclassified = merged.Unclassified.Add(s.Unclassified)
		for _, code := range s.UnclassifiedCodes {
			codes[code] = struct{}{}
		}
	}

	for code := range codes {
		merged.UnclassifiedCodes = append(merged.UnclassifiedCodes, code)
	}
	sort.Strings(merged.UnclassifiedCodes)
	return merged
}

// MergeByDay merges date-keyed accumulations from multiple sources,
// preserving every day any source reported.
func MergeByDay(sets ...map[string]Totals) map[string]Totals {
	grouped := make(map[string][]Totals)
	for _, s := range sets {
		for day, totals := range s {
			grouped[day] = append(grouped[day], totals)
		}
	}

	merged := make(map[string]Totals, len(grouped))
	for day, totals := range grouped {
		merged[day] = Merge(totals...)
	}
	return merged
}
