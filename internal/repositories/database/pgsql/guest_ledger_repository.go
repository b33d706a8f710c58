package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// guestLedgerRepository reads the front-office guest ledger. Room 2000 is the
// house folio the night audit posts internal transfers to, so it is excluded
// from every revenue figure.
type guestLedgerRepository struct {
	BaseRepository
}

func newGuestLedgerRepository(db *pgxpool.Pool) portsrepo.RevenueSourceRepository {
	return &guestLedgerRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *guestLedgerRepository) Source() domain.SourceCollection {
	return domain.SourceGuestLedger
}

// FetchWindow returns per-code sums over the whole window.
func (r *guestLedgerRepository) FetchWindow(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := `
		SELECT
			scode,
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax,
			COALESCE(SUM(credit), 0) AS credit
		FROM s1
		WHERE date BETWEEN $1 AND $2
			AND roomno NOT IN ('2000')
		GROUP BY scode
	`

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error querying guest ledger: %w", err))
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		entry := domain.LedgerEntry{Source: r.Source()}
		if err := rows.Scan(
			&entry.Code,
			&entry.Amount,
			&entry.Service,
			&entry.Tax,
			&entry.Credit,
		); err != nil {
			return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error scanning guest ledger row: %w", err))
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error iterating guest ledger rows: %w", err))
	}

	return result, nil
}

// FetchDaily returns per-code sums grouped by posting day.
func (r *guestLedgerRepository) FetchDaily(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := `
		SELECT
			date,
			scode,
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax,
			COALESCE(SUM(credit), 0) AS credit
		FROM s1
		WHERE date BETWEEN $1 AND $2
			AND roomno NOT IN ('2000')
		GROUP BY date, scode
	`

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error querying guest ledger by day: %w", err))
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		entry := domain.LedgerEntry{Source: r.Source()}
		if err := rows.Scan(
			&entry.Date,
			&entry.Code,
			&entry.Amount,
			&entry.Service,
			&entry.Tax,
			&entry.Credit,
		); err != nil {
			return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error scanning guest ledger day row: %w", err))
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error iterating guest ledger day rows: %w", err))
	}

	return result, nil
}
