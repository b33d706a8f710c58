// Package revenue is the shared revenue categorization and reconciliation
// engine. It is pure computation: classification tables, batch accumulation,
// cross-source merging, section roll-up and daily bucketing. All I/O lives in
// the source adapters; every report endpoint is a thin caller over this
// package so the code-to-category mapping exists in exactly one place.
package revenue

import (
	"strings"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
)

// Entry is the classification of one transaction code: the category it
// contributes to and whether it is a charge or an adjustment. Adjustment
// entries point at the adjustment category registered for the charge
// category they reverse, which is not always the category their code name
// suggests (e.g. the minibar reversal code lands in the housekeeping
// adjustment bucket).
type Entry struct {
	Category domain.Category
	Role     domain.Role
}

// Classification is an immutable code -> (category, role) table for one
// source collection. Lookups are O(1). Tables are built once at startup and
// never mutated afterwards; changing the mapping means redeploying.
type Classification struct {
	source  domain.SourceCollection
	entries map[string]Entry
}

// NewClassification copies entries into an immutable table for source.
func NewClassification(source domain.SourceCollection, entries map[string]Entry) *Classification {
	m := make(map[string]Entry, len(entries))
	for code, e := range entries {
		m[code] = e
	}
	return &Classification{source: source, entries: m}
}

// Source reports which collection this table classifies.
func (c *Classification) Source() domain.SourceCollection {
	return c.source
}

// Lookup classifies a code. Legacy ledger codes arrive space-padded, so the
// code is trimmed before the lookup. The second return is false for codes
// absent from the table; callers must route those to the unclassified bucket
// rather than dropping them.
func (c *Classification) Lookup(code string) (Entry, bool) {
	e, ok := c.entries[strings.TrimSpace(code)]
	return e, ok
}

// Codes lists every code in the table. Order is unspecified.
func (c *Classification) Codes() []string {
	codes := make([]string, 0, len(c.entries))
	for code := range c.entries {
		codes = append(codes, code)
	}
	return codes
}

// Len is the number of classified codes.
func (c *Classification) Len() int {
	return len(c.entries)
}
