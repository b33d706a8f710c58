package repositories

import (
	"context"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
)

// RevenueSourceRepository fetches ledger entries from one record-store
// source collection. Implementations are read-only: they never mutate the
// record store.
//
// Sources differ in shape. Some return pre-aggregated per-code sums for the
// whole window (the cheap path), others one row per transaction; the engine
// accepts both because accumulation is additive either way. A fetch error is
// fatal to the enclosing report request, wrapped as apperrors.SourceError.
type RevenueSourceRepository interface {
	// Source identifies the collection this repository reads.
	Source() domain.SourceCollection

	// FetchWindow returns entries for the inclusive window, aggregated to
	// whatever granularity the source supports.
	FetchWindow(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error)

	// FetchDaily returns entries grouped so every entry carries its calendar
	// day, for trend bucketing.
	FetchDaily(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error)
}

// OccupancyRepository reads room occupancy, an external input used only for
// derived metrics on the trend report.
type OccupancyRepository interface {
	// TotalRooms counts sellable rooms (folio pseudo-rooms excluded).
	TotalRooms(ctx context.Context) (int, error)

	// OccupiedByDay returns occupied-room counts per calendar day in the
	// window. Days with no occupancy are simply absent.
	OccupiedByDay(ctx context.Context, window domain.ReportWindow) ([]domain.DailyOccupancy, error)
}

// CollectionRepository reads the settled daily-collection view.
type CollectionRepository interface {
	FetchDetails(ctx context.Context, window domain.ReportWindow) ([]domain.CollectionItem, error)
	FetchTotals(ctx context.Context, window domain.ReportWindow) (domain.CollectionTotals, error)

	// FetchSettledTotals excludes adjustment settlements. The dashboard shows
	// this figure as today's collection.
	FetchSettledTotals(ctx context.Context, window domain.ReportWindow) (domain.CollectionTotals, error)
}

// UserRepository reads dashboard operator accounts.
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
