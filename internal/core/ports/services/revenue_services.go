package services

import (
	"context"
	"time"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
)

// RevenueSvcFacade is the deduplicated revenue engine behind every revenue
// report endpoint: the statement, the dashboard summary and the trend all go
// through it, so the classification and roll-up logic exists exactly once.
type RevenueSvcFacade interface {
	// Statement computes the per-category statement for the report date's
	// Today and MonthToDate windows.
	Statement(ctx context.Context, date time.Time) (*domain.RevenueStatement, error)

	// DashboardSummary condenses the same two windows into the dashboard
	// revenue card, alongside the settled daily collection.
	DashboardSummary(ctx context.Context, date time.Time) (*domain.DashboardSummary, error)

	// Trend computes the gap-free daily revenue series for the `days`
	// calendar days ending on `date`, with occupancy and ADR merged in.
	Trend(ctx context.Context, date time.Time, days int) ([]domain.DailyRevenue, error)
}

// CollectionSvcFacade serves the daily collection report.
type CollectionSvcFacade interface {
	DailyCollection(ctx context.Context, window domain.ReportWindow) (*domain.DailyCollectionReport, error)
}

// UserSvcFacade authenticates dashboard operators.
type UserSvcFacade interface {
	// Authenticate verifies username/password and returns the user, or
	// apperrors.ErrUnauthorized on any credential mismatch.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
