package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// spaCode is the pseudo-code every spa sale classifies under. The spa ledger
// has no code vocabulary of its own.
const spaCode = "SPA"

// spaRepository reads the spa sales view, pre-aggregated to one entry per
// window (or per day).
type spaRepository struct {
	BaseRepository
}

func newSpaRepository(db *pgxpool.Pool) portsrepo.RevenueSourceRepository {
	return &spaRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *spaRepository) Source() domain.SourceCollection {
	return domain.SourceSpa
}

// FetchWindow returns a single summed entry for the window.
func (r *spaRepository) FetchWindow(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := `
		SELECT
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax
		FROM vw_all_sales_spa
		WHERE date BETWEEN $1 AND $2
			AND payment NOT IN ('Complimentary', 'Void', 'House Use', 'Entertainment')
	`

	entry := domain.LedgerEntry{Code: spaCode, Source: r.Source()}
	err := r.Pool.QueryRow(ctx, query, window.Start, window.End).Scan(
		&entry.Amount,
		&entry.Service,
		&entry.Tax,
	)
	if err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error querying spa sales: %w", err))
	}

	if entry.Amount.IsZero() && entry.Service.IsZero() && entry.Tax.IsZero() {
		return []domain.LedgerEntry{}, nil
	}
	return []domain.LedgerEntry{entry}, nil
}

// FetchDaily returns one summed entry per day with spa activity.
func (r *spaRepository) FetchDaily(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := `
		SELECT
			date,
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax
		FROM vw_all_sales_spa
		WHERE date BETWEEN $1 AND $2
			AND payment NOT IN ('Complimentary', 'Void', 'House Use', 'Entertainment')
		GROUP BY date
	`

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error querying spa sales by day: %w", err))
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		entry := domain.LedgerEntry{Code: spaCode, Source: r.Source()}
		if err := rows.Scan(
			&entry.Date,
			&entry.Amount,
			&entry.Service,
			&entry.Tax,
		); err != nil {
			return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error scanning spa sales day row: %w", err))
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error iterating spa sales day rows: %w", err))
	}

	return result, nil
}
