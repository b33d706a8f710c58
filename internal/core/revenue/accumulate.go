package revenue

import (
	"sort"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
)

// Totals is the per-category accumulation for one batch of ledger entries.
// Unknown codes are never dropped: their money lands in Unclassified and the
// distinct codes are retained for diagnostics.
type Totals struct {
	Categories        map[domain.Category]domain.CategoryTotal
	Unclassified      domain.CategoryTotal
	UnclassifiedCodes []string
}

// NewTotals returns an empty accumulation.
func NewTotals() Totals {
	return Totals{Categories: make(map[domain.Category]domain.CategoryTotal)}
}

// Accumulate classifies one batch of entries from a single source and
// window. Charge entries add (amount, service, tax) to their category;
// adjustment entries add (credit, service, tax) to the adjustment category
// they are registered against. The subtraction of adjustment categories from
// their sections happens in RollUp, so category totals themselves only ever
// grow and the whole operation is commutative and associative.
func Accumulate(table *Classification, entries []domain.LedgerEntry) Totals {
	t := NewTotals()
	unknown := make(map[string]struct{})

	for _, e := range entries {
		entry, ok := table.Lookup(e.Code)
		if !ok {
			// An unmapped code can be either shape, so take whichever value
			// column is populated; both are zero-coerced by the adapters.
			t.Unclassified = t.Unclassified.Add(domain.CategoryTotal{
				Amount:  e.Amount.Add(e.Credit),
				Service: e.Service,
				Tax:     e.Tax,
			})
			unknown[e.Code] = struct{}{}
			continue
		}

		value := e.Amount
		if entry.Role == domain.RoleAdjustment {
			value = e.Credit
		}
		t.Categories[entry.Category] = t.Categories[entry.Category].Add(domain.CategoryTotal{
			Amount:  value,
			Service: e.Service,
			Tax:     e.Tax,
		})
	}

	for code := range unknown {
		t.UnclassifiedCodes = append(t.UnclassifiedCodes, code)
	}
	sort.Strings(t.UnclassifiedCodes)
	return t
}

// AccumulateByDay runs Accumulate once per calendar day present in the
// batch, keyed by the day in DateLayout form. Days absent from the batch are
// absent from the map; the series bucketer fills the gaps with zeroes.
func AccumulateByDay(table *Classification, entries []domain.LedgerEntry) map[string]Totals {
	byDay := make(map[string][]domain.LedgerEntry)
	for _, e := range entries {
		key := domain.Day(e.Date).Format(domain.DateLayout)
		byDay[key] = append(byDay[key], e)
	}

	out := make(map[string]Totals, len(byDay))
	for key, dayEntries := range byDay {
		out[key] = Accumulate(table, dayEntries)
	}
	return out
}
