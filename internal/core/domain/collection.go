package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionItem is one settled folio line from the daily collection view.
type CollectionItem struct {
	Serial     int
	Date       time.Time
	ItemID     string
	TrBillNo   string
	BillNo     string
	RoomNo     string
	GuestName  string
	Company    string
	ChargeTo   string
	Payment    string
	Cheque     decimal.Decimal
	Cash       decimal.Decimal
	Card       decimal.Decimal
	Commission decimal.Decimal
	Mobile     decimal.Decimal
}

// CollectionTotals sums each settlement method over a window.
type CollectionTotals struct {
	Cheque     decimal.Decimal
	Cash       decimal.Decimal
	Card       decimal.Decimal
	Commission decimal.Decimal
	Mobile     decimal.Decimal
}

// Grand is the sum across all settlement methods.
func (t CollectionTotals) Grand() decimal.Decimal {
	return t.Cheque.Add(t.Cash).Add(t.Card).Add(t.Commission).Add(t.Mobile)
}

// DailyCollectionReport pairs detail rows with their method totals.
type DailyCollectionReport struct {
	Window  ReportWindow
	Details []CollectionItem
	Totals  CollectionTotals
}
