package revenue_test

import (
	"testing"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/revenue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables_CoverEverySource(t *testing.T) {
	tables := revenue.DefaultTables()
	for _, source := range []domain.SourceCollection{
		domain.SourceGuestLedger,
		domain.SourceOutletSales,
		domain.SourceOutletSalesB,
		domain.SourceBanquet,
		domain.SourceSpa,
	} {
		table, ok := tables[source]
		require.True(t, ok, "missing table for %s", source)
		assert.Equal(t, source, table.Source())
		assert.Greater(t, table.Len(), 0)
	}
}

func TestClassification_LookupTrimsAndMisses(t *testing.T) {
	table := revenue.DefaultTables()[domain.SourceGuestLedger]

	entry, ok := table.Lookup("SR001")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryRoomCharge, entry.Category)
	assert.Equal(t, domain.RoleCharge, entry.Role)

	padded, ok := table.Lookup("  DR001  ")
	require.True(t, ok)
	assert.Equal(t, domain.CategoryRoomAdjustment, padded.Category)
	assert.Equal(t, domain.RoleAdjustment, padded.Role)

	_, ok = table.Lookup("NOPE1")
	assert.False(t, ok)
}

func TestClassification_EveryCategoryBelongsToOneSection(t *testing.T) {
	owner := make(map[domain.Category]domain.Section)
	for _, def := range revenue.Sections() {
		for _, category := range def.Charges {
			_, seen := owner[category]
			require.False(t, seen, "category %s grouped twice", category)
			owner[category] = def.Section
		}
		_, seen := owner[def.Adjustment]
		require.False(t, seen, "adjustment %s grouped twice", def.Adjustment)
		owner[def.Adjustment] = def.Section
	}

	// Every code in every table resolves to a category the roll-up knows.
	for source, table := range revenue.DefaultTables() {
		for _, code := range table.Codes() {
			entry, ok := table.Lookup(code)
			require.True(t, ok)
			_, grouped := owner[entry.Category]
			assert.True(t, grouped, "source %s code %s maps to ungrouped category %s", source, code, entry.Category)
		}
	}
}

func TestClassification_AdjustmentCodesUseAdjustmentCategories(t *testing.T) {
	adjustmentCategories := map[domain.Category]struct{}{}
	for _, def := range revenue.Sections() {
		adjustmentCategories[def.Adjustment] = struct{}{}
	}

	for source, table := range revenue.DefaultTables() {
		for _, code := range table.Codes() {
			entry, _ := table.Lookup(code)
			_, isAdjCategory := adjustmentCategories[entry.Category]
			if entry.Role == domain.RoleAdjustment {
				assert.True(t, isAdjCategory, "source %s code %s: adjustment role must target an adjustment category", source, code)
			} else {
				assert.False(t, isAdjCategory, "source %s code %s: charge role must not target an adjustment category", source, code)
			}
		}
	}
}
