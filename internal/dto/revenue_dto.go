package dto

import (
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotalResponse represents one revenue category's totals in a window
type CategoryTotalResponse struct {
	Amount  decimal.Decimal `json:"amount"`
	Service decimal.Decimal `json:"service"`
	Tax     decimal.Decimal `json:"tax"`
	Grand   decimal.Decimal `json:"grand"`
}

// SectionTotalResponse represents one rolled-up section in a window
type SectionTotalResponse struct {
	Section string          `json:"section"`
	Net     decimal.Decimal `json:"net"`
	Service decimal.Decimal `json:"service"`
	Tax     decimal.Decimal `json:"tax"`
	Grand   decimal.Decimal `json:"grand"`
}

// UnclassifiedResponse surfaces money posted under codes the classification
// tables do not know. It is a diagnostic, never part of any section.
type UnclassifiedResponse struct {
	Amount  decimal.Decimal `json:"amount"`
	Service decimal.Decimal `json:"service"`
	Tax     decimal.Decimal `json:"tax"`
	Grand   decimal.Decimal `json:"grand"`
	Codes   []string        `json:"codes"`
}

// WindowStatementResponse represents one window's full statement
type WindowStatementResponse struct {
	Categories   map[string]CategoryTotalResponse `json:"categories"`
	Sections     []SectionTotalResponse           `json:"sections"`
	GrandTotal   SectionTotalResponse             `json:"grandTotal"`
	Unclassified UnclassifiedResponse             `json:"unclassified"`
}

// RevenueStatementResponse represents the revenue statement report response
type RevenueStatementResponse struct {
	Date        string                  `json:"date"`
	Today       WindowStatementResponse `json:"today"`
	MonthToDate WindowStatementResponse `json:"monthToDate"`
}

// DashboardRevenueResponse represents the dashboard revenue card
type DashboardRevenueResponse struct {
	Date            string          `json:"date"`
	DailyCollection decimal.Decimal `json:"dailyCollection"`
	TodayRevenue    decimal.Decimal `json:"todayRevenue"`
	MTDRevenue      decimal.Decimal `json:"mtdRevenue"`
	MonthlyTarget   decimal.Decimal `json:"monthlyTarget"`
	TargetAchieved  decimal.Decimal `json:"targetAchievedPct"`
}

// TrendEntryResponse represents one day of the revenue trend series
type TrendEntryResponse struct {
	Date          string          `json:"date"`
	Revenue       decimal.Decimal `json:"revenue"`
	RoomRevenue   decimal.Decimal `json:"roomRevenue"`
	FnbRevenue    decimal.Decimal `json:"fnbRevenue"`
	OtherRevenue  decimal.Decimal `json:"otherRevenue"`
	OccupiedRooms int             `json:"occupiedRooms"`
	TotalRooms    int             `json:"totalRooms"`
	ADR           decimal.Decimal `json:"adr"`
}

// RevenueTrendResponse represents the revenue trend report response
type RevenueTrendResponse struct {
	StartDate string               `json:"startDate"`
	EndDate   string               `json:"endDate"`
	Days      []TrendEntryResponse `json:"days"`
}

func toWindowStatementResponse(w domain.WindowStatement) WindowStatementResponse {
	categories := make(map[string]CategoryTotalResponse, len(w.Categories))
	for cat, total := range w.Categories {
		categories[string(cat)] = CategoryTotalResponse{
			Amount:  total.Amount,
			Service: total.Service,
			Tax:     total.Tax,
			Grand:   total.Grand(),
		}
	}

	sections := make([]SectionTotalResponse, 0, len(w.Sections))
	for _, st := range w.Sections {
		sections = append(sections, SectionTotalResponse{
			Section: string(st.Section),
			Net:     st.Net,
			Service: st.Service,
			Tax:     st.Tax,
			Grand:   st.Grand,
		})
	}

	codes := w.UnclassifiedCodes
	if codes == nil {
		codes = []string{}
	}

	return WindowStatementResponse{
		Categories: categories,
		Sections:   sections,
		GrandTotal: SectionTotalResponse{
			Section: "total",
			Net:     w.GrandTotal.Net,
			Service: w.GrandTotal.Service,
			Tax:     w.GrandTotal.Tax,
			Grand:   w.GrandTotal.Grand,
		},
		Unclassified: UnclassifiedResponse{
			Amount:  w.Unclassified.Amount,
			Service: w.Unclassified.Service,
			Tax:     w.Unclassified.Tax,
			Grand:   w.Unclassified.Grand(),
			Codes:   codes,
		},
	}
}

// ToRevenueStatementResponse maps a domain statement to its API shape
func ToRevenueStatementResponse(s *domain.RevenueStatement) RevenueStatementResponse {
	return RevenueStatementResponse{
		Date:        s.Date.Format(domain.DateLayout),
		Today:       toWindowStatementResponse(s.Today),
		MonthToDate: toWindowStatementResponse(s.MonthToDate),
	}
}

// ToDashboardRevenueResponse maps the dashboard summary to its API shape
func ToDashboardRevenueResponse(date string, s *domain.DashboardSummary) DashboardRevenueResponse {
	achieved := decimal.Zero
	if s.MonthlyTarget.IsPositive() {
		achieved = s.MTDRevenue.Div(s.MonthlyTarget).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return DashboardRevenueResponse{
		Date:            date,
		DailyCollection: s.DailyCollection,
		TodayRevenue:    s.TodayRevenue,
		MTDRevenue:      s.MTDRevenue,
		MonthlyTarget:   s.MonthlyTarget,
		TargetAchieved:  achieved,
	}
}

// ToRevenueTrendResponse maps the daily series to its API shape
func ToRevenueTrendResponse(window domain.ReportWindow, series []domain.DailyRevenue) RevenueTrendResponse {
	days := make([]TrendEntryResponse, 0, len(series))
	for _, d := range series {
		days = append(days, TrendEntryResponse{
			Date:          d.Date.Format(domain.DateLayout),
			Revenue:       d.RoomRevenue.Add(d.FnbRevenue).Add(d.OtherRevenue),
			RoomRevenue:   d.RoomRevenue,
			FnbRevenue:    d.FnbRevenue,
			OtherRevenue:  d.OtherRevenue,
			OccupiedRooms: d.OccupiedRooms,
			TotalRooms:    d.TotalRooms,
			ADR:           d.ADR.Round(2),
		})
	}
	return RevenueTrendResponse{
		StartDate: window.Start.Format(domain.DateLayout),
		EndDate:   window.End.Format(domain.DateLayout),
		Days:      days,
	}
}
