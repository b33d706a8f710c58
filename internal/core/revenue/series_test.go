package revenue_test

import (
	"testing"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/revenue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySeries_GapFree(t *testing.T) {
	tables := revenue.DefaultTables()
	window := domain.ReportWindow{Start: day("2025-03-01"), End: day("2025-03-05")}

	// Day 3 has no transactions in any source.
	byDay := revenue.MergeByDay(
		revenue.AccumulateByDay(tables[domain.SourceGuestLedger], []domain.LedgerEntry{
			{Date: day("2025-03-01"), Code: "SR001", Amount: dec(100), Service: dec(10), Tax: dec(5)},
			{Date: day("2025-03-02"), Code: "SR001", Amount: dec(200)},
			{Date: day("2025-03-04"), Code: "SL002", Amount: dec(30)},
			{Date: day("2025-03-05"), Code: "SR001", Amount: dec(400)},
		}),
		revenue.AccumulateByDay(tables[domain.SourceOutletSales], []domain.LedgerEntry{
			{Date: day("2025-03-02"), Code: "SBA01", Amount: dec(50)},
		}),
	)

	series := revenue.DailySeries(window, byDay)
	require.Len(t, series, 5)

	assert.Equal(t, day("2025-03-01"), series[0].Date)
	assert.True(t, series[0].Room.Equal(dec(115))) // 100 + 10 + 5

	assert.True(t, series[1].Room.Equal(dec(200)))
	assert.True(t, series[1].Fnb.Equal(dec(50)))

	// The empty day is present with all lines zero.
	gap := series[2]
	assert.Equal(t, day("2025-03-03"), gap.Date)
	assert.True(t, gap.Room.IsZero())
	assert.True(t, gap.Fnb.IsZero())
	assert.True(t, gap.Other.IsZero())
	assert.True(t, gap.Total().IsZero())

	assert.True(t, series[3].Other.Equal(dec(30))) // laundry rolls into other
	assert.True(t, series[4].Room.Equal(dec(400)))
}

func TestDailySeries_AllEmptyWindow(t *testing.T) {
	window := domain.ReportWindow{Start: day("2025-03-01"), End: day("2025-03-05")}
	series := revenue.DailySeries(window, nil)

	require.Len(t, series, 5)
	for i, bucket := range series {
		assert.Equal(t, day("2025-03-01").AddDate(0, 0, i), bucket.Date)
		assert.True(t, bucket.Total().IsZero())
	}
}

func TestDailySeries_AdjustmentReducesDay(t *testing.T) {
	tables := revenue.DefaultTables()
	window := domain.ReportWindow{Start: day("2025-03-01"), End: day("2025-03-01")}

	byDay := revenue.AccumulateByDay(tables[domain.SourceGuestLedger], []domain.LedgerEntry{
		{Date: day("2025-03-01"), Code: "SR001", Amount: dec(1000), Service: dec(100), Tax: dec(50)},
		{Date: day("2025-03-01"), Code: "DR001", Credit: dec(200), Service: dec(20), Tax: dec(10)},
	})

	series := revenue.DailySeries(window, byDay)
	require.Len(t, series, 1)
	assert.True(t, series[0].Room.Equal(dec(920)))
}

func TestADR(t *testing.T) {
	assert.True(t, revenue.ADR(dec(1000), 10).Equal(dec(100)))
	assert.True(t, revenue.ADR(dec(1000), 0).IsZero())
	assert.True(t, revenue.ADR(dec(0), 5).IsZero())
}
