package revenue_test

import (
	"testing"
	"time"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/revenue"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func guestLedgerTable() *revenue.Classification {
	return revenue.DefaultTables()[domain.SourceGuestLedger]
}

func TestAccumulate_ChargeAndAdjustment(t *testing.T) {
	table := guestLedgerTable()
	entries := []domain.LedgerEntry{
		{Code: "SR001", Amount: dec(1000), Service: dec(100), Tax: dec(50)},
		{Code: "DR001", Credit: dec(200), Service: dec(20), Tax: dec(10)},
	}

	totals := revenue.Accumulate(table, entries)

	// The charge category keeps its full value; the reversal accumulates
	// into its own adjustment category and is only netted off at roll-up.
	room := totals.Categories[domain.CategoryRoomCharge]
	assert.True(t, room.Amount.Equal(dec(1000)))
	assert.True(t, room.Service.Equal(dec(100)))
	assert.True(t, room.Tax.Equal(dec(50)))

	adj := totals.Categories[domain.CategoryRoomAdjustment]
	assert.True(t, adj.Amount.Equal(dec(200)))
	assert.True(t, adj.Service.Equal(dec(20)))
	assert.True(t, adj.Tax.Equal(dec(10)))
}

func TestAccumulate_PaddedCodesAreTrimmed(t *testing.T) {
	totals := revenue.Accumulate(guestLedgerTable(), []domain.LedgerEntry{
		{Code: " SR001 ", Amount: dec(500)},
	})
	assert.True(t, totals.Categories[domain.CategoryRoomCharge].Amount.Equal(dec(500)))
	assert.Empty(t, totals.UnclassifiedCodes)
}

func TestAccumulate_UnclassifiedIsolation(t *testing.T) {
	totals := revenue.Accumulate(guestLedgerTable(), []domain.LedgerEntry{
		{Code: "ZZ999", Amount: dec(123), Service: dec(7), Tax: dec(3)},
	})

	// The unknown code never leaks into any named category.
	for category, total := range totals.Categories {
		assert.True(t, total.IsZero(), "category %s should be untouched", category)
	}
	assert.True(t, totals.Unclassified.Amount.Equal(dec(123)))
	assert.True(t, totals.Unclassified.Service.Equal(dec(7)))
	assert.True(t, totals.Unclassified.Tax.Equal(dec(3)))
	assert.Equal(t, []string{"ZZ999"}, totals.UnclassifiedCodes)
}

func TestAccumulate_ZeroValueFieldsStayDefined(t *testing.T) {
	// Adapters coerce NULLs to zero decimals; zero-valued entries must not
	// disturb totals.
	totals := revenue.Accumulate(guestLedgerTable(), []domain.LedgerEntry{
		{Code: "SL002"},
		{Code: "SL002", Amount: dec(40)},
	})
	laundry := totals.Categories[domain.CategoryLaundry]
	assert.True(t, laundry.Amount.Equal(dec(40)))
	assert.True(t, laundry.Service.IsZero())
}

func TestAccumulate_Additivity(t *testing.T) {
	table := guestLedgerTable()
	first := []domain.LedgerEntry{
		{Code: "SR001", Amount: dec(100), Service: dec(10), Tax: dec(5)},
		{Code: "SM001", Amount: dec(30)},
	}
	second := []domain.LedgerEntry{
		{Code: "SR001", Amount: dec(200), Service: dec(20), Tax: dec(10)},
		{Code: "DM001", Credit: dec(15)},
	}

	split := revenue.Merge(revenue.Accumulate(table, first), revenue.Accumulate(table, second))
	combined := revenue.Accumulate(table, append(append([]domain.LedgerEntry{}, first...), second...))

	require.Len(t, split.Categories, len(combined.Categories))
	for category, total := range combined.Categories {
		assert.True(t, split.Categories[category].Amount.Equal(total.Amount), "amount for %s", category)
		assert.True(t, split.Categories[category].Service.Equal(total.Service), "service for %s", category)
		assert.True(t, split.Categories[category].Tax.Equal(total.Tax), "tax for %s", category)
	}
}

func TestAccumulate_Idempotence(t *testing.T) {
	table := guestLedgerTable()
	entries := []domain.LedgerEntry{
		{Code: "SR001", Amount: dec(777), Service: dec(77), Tax: dec(7)},
		{Code: "XX000", Amount: dec(1)},
	}

	a := revenue.Accumulate(table, entries)
	b := revenue.Accumulate(table, entries)

	assert.Equal(t, a.UnclassifiedCodes, b.UnclassifiedCodes)
	for category := range a.Categories {
		assert.True(t, a.Categories[category].Amount.Equal(b.Categories[category].Amount))
	}
	assert.True(t, a.Unclassified.Amount.Equal(b.Unclassified.Amount))
}

func TestAccumulateByDay_GroupsByCalendarDay(t *testing.T) {
	table := guestLedgerTable()
	entries := []domain.LedgerEntry{
		{Date: day("2025-03-01"), Code: "SR001", Amount: dec(100)},
		{Date: day("2025-03-01"), Code: "SR001", Amount: dec(50)},
		{Date: day("2025-03-03"), Code: "SR001", Amount: dec(70)},
	}

	byDay := revenue.AccumulateByDay(table, entries)

	require.Len(t, byDay, 2)
	assert.True(t, byDay["2025-03-01"].Categories[domain.CategoryRoomCharge].Amount.Equal(dec(150)))
	assert.True(t, byDay["2025-03-03"].Categories[domain.CategoryRoomCharge].Amount.Equal(dec(70)))
}
