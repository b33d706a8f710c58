package revenue

import (
	"time"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DayRevenue is one bucket of the trend series with sections collapsed to
// the three lines the trend chart plots: room, F&B, and everything else
// (hall & equipment, housekeeping, others).
type DayRevenue struct {
	Date         time.Time
	Room         decimal.Decimal
	Fnb          decimal.Decimal
	Other        decimal.Decimal
	Unclassified decimal.Decimal
}

// Total is room + F&B + other for the day.
func (d DayRevenue) Total() decimal.Decimal {
	return d.Room.Add(d.Fnb).Add(d.Other)
}

// DailySeries rolls merged per-day accumulations into an ordered, gap-free
// bucket per calendar day of the window. Every day in the window gets a
// bucket before any data is merged in, so days with no transactions render
// as zero instead of being absent. Day revenue is the section grand
// (net + service + tax), matching what the trend chart reports.
func DailySeries(window domain.ReportWindow, byDay map[string]Totals) []DayRevenue {
	days := window.Days()
	series := make([]DayRevenue, 0, len(days))

	for _, day := range days {
		bucket := DayRevenue{Date: day}
		if totals, ok := byDay[day.Format(domain.DateLayout)]; ok {
			sections, _ := RollUp(totals)
			for _, st := range sections {
				switch st.Section {
				case domain.SectionRoom:
					bucket.Room = bucket.Room.Add(st.Grand)
				case domain.SectionFnb:
					bucket.Fnb = bucket.Fnb.Add(st.Grand)
				default:
					bucket.Other = bucket.Other.Add(st.Grand)
				}
			}
			bucket.Unclassified = totals.Unclassified.Grand()
		}
		series = append(series, bucket)
	}
	return series
}

// ADR is the average daily rate: room revenue over occupied rooms, zero when
// no rooms were occupied.
func ADR(roomRevenue decimal.Decimal, occupiedRooms int) decimal.Decimal {
	if occupiedRooms <= 0 {
		return decimal.Zero
	}
	return roomRevenue.Div(decimal.NewFromInt(int64(occupiedRooms)))
}
