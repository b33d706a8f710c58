package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// Settlement types that never count as revenue in the outlet ledgers.
const outletPaymentExclusions = `('Complimentary', 'Void', 'House Use', 'Entertainment')`

// outletSalesRepository reads one of the two point-of-sale ledgers. The two
// views share a schema but not a code vocabulary, so each instance is bound
// to its own view and source collection.
type outletSalesRepository struct {
	BaseRepository
	view   string
	source domain.SourceCollection
}

func newOutletSalesRepository(db *pgxpool.Pool) portsrepo.RevenueSourceRepository {
	return &outletSalesRepository{
		BaseRepository: BaseRepository{Pool: db},
		view:           "vw_all_sales_tips",
		source:         domain.SourceOutletSales,
	}
}

func newOutletSalesBRepository(db *pgxpool.Pool) portsrepo.RevenueSourceRepository {
	return &outletSalesRepository{
		BaseRepository: BaseRepository{Pool: db},
		view:           "vw_all_sales_tips_b",
		source:         domain.SourceOutletSalesB,
	}
}

func (r *outletSalesRepository) Source() domain.SourceCollection {
	return r.source
}

// FetchWindow returns per-code sums over the whole window. The view name is
// one of two compile-time constants, never caller input.
func (r *outletSalesRepository) FetchWindow(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := fmt.Sprintf(`
		SELECT
			scode,
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax
		FROM %s
		WHERE date BETWEEN $1 AND $2
			AND payment NOT IN %s
		GROUP BY scode
	`, r.view, outletPaymentExclusions)

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, apperrors.NewSourceError(r.source, window, fmt.Errorf("error querying %s: %w", r.view, err))
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		entry := domain.LedgerEntry{Source: r.source}
		if err := rows.Scan(
			&entry.Code,
			&entry.Amount,
			&entry.Service,
			&entry.Tax,
		); err != nil {
			return nil, apperrors.NewSourceError(r.source, window, fmt.Errorf("error scanning %s row: %w", r.view, err))
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewSourceError(r.source, window, fmt.Errorf("error iterating %s rows: %w", r.view, err))
	}

	return result, nil
}

// FetchDaily returns per-code sums grouped by sale day.
func (r *outletSalesRepository) FetchDaily(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := fmt.Sprintf(`
		SELECT
			date,
			scode,
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax
		FROM %s
		WHERE date BETWEEN $1 AND $2
			AND payment NOT IN %s
		GROUP BY date, scode
	`, r.view, outletPaymentExclusions)

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, apperrors.NewSourceError(r.source, window, fmt.Errorf("error querying %s by day: %w", r.view, err))
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		entry := domain.LedgerEntry{Source: r.source}
		if err := rows.Scan(
			&entry.Date,
			&entry.Code,
			&entry.Amount,
			&entry.Service,
			&entry.Tax,
		); err != nil {
			return nil, apperrors.NewSourceError(r.source, window, fmt.Errorf("error scanning %s day row: %w", r.view, err))
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewSourceError(r.source, window, fmt.Errorf("error iterating %s day rows: %w", r.view, err))
	}

	return result, nil
}
