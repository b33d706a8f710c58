package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceCollection identifies which record-store collection a ledger entry
// was fetched from. Each collection has its own shape and its own
// classification table; totals from different collections are merged
// additively, never deduplicated.
type SourceCollection string

const (
	SourceGuestLedger  SourceCollection = "guest_ledger"
	SourceOutletSales  SourceCollection = "outlet_sales"
	SourceOutletSalesB SourceCollection = "outlet_sales_b"
	SourceBanquet      SourceCollection = "banquet"
	SourceSpa          SourceCollection = "spa"
)

// LedgerEntry is one row handed to the revenue engine. Depending on the
// source it is either a single transaction or a pre-aggregated per-code sum;
// the engine treats both identically since accumulation is additive.
//
// Entries are read-only snapshots of the record store. Monetary fields are
// never null: adapters coerce absent values to zero before they get here.
type LedgerEntry struct {
	Date    time.Time
	Code    string
	Amount  decimal.Decimal
	Service decimal.Decimal
	Tax     decimal.Decimal
	Credit  decimal.Decimal
	Source  SourceCollection
}
