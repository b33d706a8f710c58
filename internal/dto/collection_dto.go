package dto

import (
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CollectionItemResponse represents one settled folio line
type CollectionItemResponse struct {
	Serial     int             `json:"serial"`
	Date       string          `json:"date"`
	ItemID     string          `json:"itemID"`
	TrBillNo   string          `json:"trBillNo"`
	BillNo     string          `json:"billNo"`
	RoomNo     string          `json:"roomNo"`
	GuestName  string          `json:"guestName"`
	Company    string          `json:"company"`
	ChargeTo   string          `json:"chargeTo"`
	Payment    string          `json:"payment"`
	Cheque     decimal.Decimal `json:"cheque"`
	Cash       decimal.Decimal `json:"cash"`
	Card       decimal.Decimal `json:"card"`
	Commission decimal.Decimal `json:"commission"`
	Mobile     decimal.Decimal `json:"mobile"`
}

// CollectionTotalsResponse represents summed settlement methods
type CollectionTotalsResponse struct {
	Cheque     decimal.Decimal `json:"cheque"`
	Cash       decimal.Decimal `json:"cash"`
	Card       decimal.Decimal `json:"card"`
	Commission decimal.Decimal `json:"commission"`
	Mobile     decimal.Decimal `json:"mobile"`
	Grand      decimal.Decimal `json:"grand"`
}

// DailyCollectionResponse represents the daily collection report response
type DailyCollectionResponse struct {
	StartDate string                   `json:"startDate"`
	EndDate   string                   `json:"endDate"`
	Details   []CollectionItemResponse `json:"details"`
	Totals    CollectionTotalsResponse `json:"totals"`
}

// ToDailyCollectionResponse maps a domain report to its API shape
func ToDailyCollectionResponse(r *domain.DailyCollectionReport) DailyCollectionResponse {
	details := make([]CollectionItemResponse, 0, len(r.Details))
	for _, item := range r.Details {
		details = append(details, CollectionItemResponse{
			Serial:     item.Serial,
			Date:       item.Date.Format(domain.DateLayout),
			ItemID:     item.ItemID,
			TrBillNo:   item.TrBillNo,
			BillNo:     item.BillNo,
			RoomNo:     item.RoomNo,
			GuestName:  item.GuestName,
			Company:    item.Company,
			ChargeTo:   item.ChargeTo,
			Payment:    item.Payment,
			Cheque:     item.Cheque,
			Cash:       item.Cash,
			Card:       item.Card,
			Commission: item.Commission,
			Mobile:     item.Mobile,
		})
	}

	return DailyCollectionResponse{
		StartDate: r.Window.Start.Format(domain.DateLayout),
		EndDate:   r.Window.End.Format(domain.DateLayout),
		Details:   details,
		Totals: CollectionTotalsResponse{
			Cheque:     r.Totals.Cheque,
			Cash:       r.Totals.Cash,
			Card:       r.Totals.Card,
			Commission: r.Totals.Commission,
			Mobile:     r.Totals.Mobile,
			Grand:      r.Totals.Grand(),
		},
	}
}
