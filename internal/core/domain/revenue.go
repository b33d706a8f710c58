package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the canonical revenue buckets a transaction code maps to.
// The string value doubles as the JSON key in report responses.
type Category string

const (
	CategoryRoomCharge          Category = "roomCharge"
	CategoryExtraBed            Category = "extraBed"
	CategoryRoomAdjustment      Category = "roomAdjustment"
	CategoryRestaurant          Category = "restaurant"
	CategoryRoomService         Category = "roomService"
	CategoryOutside             Category = "outside"
	CategoryBanquetFood         Category = "banquetFood"
	CategoryConferenceFood      Category = "conferenceFood"
	CategoryFnbAdjustment       Category = "fnbAdjustment"
	CategoryBanquetHall         Category = "banquetHall"
	CategoryConferenceHall      Category = "conferenceHall"
	CategoryEquipment           Category = "equipment"
	CategoryHallAdjustment      Category = "hallAdjustment"
	CategoryMinibar             Category = "minibar"
	CategoryLaundry             Category = "laundry"
	CategoryHkAdjustment        Category = "hkAdjustment"
	CategoryTransport           Category = "transport"
	CategoryTelephone           Category = "telephone"
	CategoryBusinessCenter      Category = "businessCenter"
	CategoryDriverAccommodation Category = "driverAccommodation"
	CategoryHealthClub          Category = "healthClub"
	CategorySwimmingPool        Category = "swimmingPool"
	CategorySpa                 Category = "spa"
	CategoryGiftShop            Category = "giftShop"
	CategoryTicketing           Category = "ticketing"
	CategoryMisc                Category = "misc"
	CategoryDamage              Category = "damage"
	CategoryOthersAdjustment    Category = "othersAdjustment"
)

// Role tells the accumulator which monetary field of a ledger entry carries
// the value: charge rows use the amount column, adjustment rows the credit
// column.
type Role string

const (
	RoleCharge     Role = "CHARGE"
	RoleAdjustment Role = "ADJUSTMENT"
)

// Section is a named grouping of categories used for report presentation.
type Section string

const (
	SectionRoom          Section = "room"
	SectionFnb           Section = "fnb"
	SectionHallEquipment Section = "hallEquipment"
	SectionHousekeeping  Section = "housekeeping"
	SectionOthers        Section = "others"
)

// CategoryTotal holds the running net/service/tax sums for one category
// within one report window. The zero value is a valid empty total.
type CategoryTotal struct {
	Amount  decimal.Decimal `json:"amount"`
	Service decimal.Decimal `json:"service"`
	Tax     decimal.Decimal `json:"tax"`
}

// Add returns the component-wise sum of two totals.
func (t CategoryTotal) Add(o CategoryTotal) CategoryTotal {
	return CategoryTotal{
		Amount:  t.Amount.Add(o.Amount),
		Service: t.Service.Add(o.Service),
		Tax:     t.Tax.Add(o.Tax),
	}
}

// Grand is amount + service + tax.
func (t CategoryTotal) Grand() decimal.Decimal {
	return t.Amount.Add(t.Service).Add(t.Tax)
}

// IsZero reports whether all three components are zero.
func (t CategoryTotal) IsZero() bool {
	return t.Amount.IsZero() && t.Service.IsZero() && t.Tax.IsZero()
}

// SectionTotal is the rolled-up result for one section: charge categories
// summed, the section's adjustment category subtracted.
type SectionTotal struct {
	Section Section         `json:"section"`
	Net     decimal.Decimal `json:"net"`
	Service decimal.Decimal `json:"service"`
	Tax     decimal.Decimal `json:"tax"`
	Grand   decimal.Decimal `json:"grand"`
}

// GrandTotal is the sum of all section totals for one window.
type GrandTotal struct {
	Net     decimal.Decimal `json:"net"`
	Service decimal.Decimal `json:"service"`
	Tax     decimal.Decimal `json:"tax"`
	Grand   decimal.Decimal `json:"grand"`
}

// WindowStatement is the fully aggregated revenue picture for one window.
type WindowStatement struct {
	Categories        map[Category]CategoryTotal
	Unclassified      CategoryTotal
	UnclassifiedCodes []string
	Sections          []SectionTotal
	GrandTotal        GrandTotal
}

// RevenueStatement pairs the two windows every statement request computes:
// the report date itself and the month-to-date cumulative window ending on it.
type RevenueStatement struct {
	Date        time.Time
	Today       WindowStatement
	MonthToDate WindowStatement
}

// DashboardSummary is the condensed revenue card on the dashboard.
type DashboardSummary struct {
	DailyCollection decimal.Decimal
	TodayRevenue    decimal.Decimal
	MTDRevenue      decimal.Decimal
	MonthlyTarget   decimal.Decimal
}

// DailyRevenue is one entry of the gap-free trend series.
type DailyRevenue struct {
	Date          time.Time
	RoomRevenue   decimal.Decimal
	FnbRevenue    decimal.Decimal
	OtherRevenue  decimal.Decimal
	OccupiedRooms int
	TotalRooms    int
	ADR           decimal.Decimal
}
