package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// banquetRepository reads the function billing ledger. Rows carry a booking
// type (bancon) and an item type instead of a transaction code, so the two
// are folded into a single pseudo-code per row: "BAN/FOOD", "CON/BEVERAGE",
// or the bare item type for hall and equipment rent.
type banquetRepository struct {
	BaseRepository
}

func newBanquetRepository(db *pgxpool.Pool) portsrepo.RevenueSourceRepository {
	return &banquetRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func (r *banquetRepository) Source() domain.SourceCollection {
	return domain.SourceBanquet
}

// banquetCode folds one grouped row into the pseudo-code vocabulary the
// classification table understands.
func banquetCode(banCon, itemType string) string {
	banCon = strings.ToUpper(strings.TrimSpace(banCon))
	itemType = strings.ToUpper(strings.TrimSpace(itemType))
	switch itemType {
	case "FOOD", "BEVERAGE":
		return banCon + "/" + itemType
	default:
		// Hall and equipment rows classify on the item type alone.
		return itemType
	}
}

// FetchWindow returns per-(booking type, item type) sums over the window.
func (r *banquetRepository) FetchWindow(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := `
		SELECT
			bancon,
			itemtype,
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax
		FROM function_billing
		WHERE date BETWEEN $1 AND $2
			AND credittype NOT IN ('Complimentary', 'Void', 'House Use', 'Entertainment')
		GROUP BY bancon, itemtype
	`

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error querying function billing: %w", err))
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		var banCon, itemType string
		entry := domain.LedgerEntry{Source: r.Source()}
		if err := rows.Scan(
			&banCon,
			&itemType,
			&entry.Amount,
			&entry.Service,
			&entry.Tax,
		); err != nil {
			return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error scanning function billing row: %w", err))
		}
		entry.Code = banquetCode(banCon, itemType)
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error iterating function billing rows: %w", err))
	}

	return result, nil
}

// FetchDaily returns the same sums grouped by function day.
func (r *banquetRepository) FetchDaily(ctx context.Context, window domain.ReportWindow) ([]domain.LedgerEntry, error) {
	query := `
		SELECT
			date,
			bancon,
			itemtype,
			COALESCE(SUM(ammount), 0) AS amount,
			COALESCE(SUM(service), 0) AS service,
			COALESCE(SUM(tax), 0) AS tax
		FROM function_billing
		WHERE date BETWEEN $1 AND $2
			AND credittype NOT IN ('Complimentary', 'Void', 'House Use', 'Entertainment')
		GROUP BY date, bancon, itemtype
	`

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error querying function billing by day: %w", err))
	}
	defer rows.Close()

	var result []domain.LedgerEntry
	for rows.Next() {
		var banCon, itemType string
		entry := domain.LedgerEntry{Source: r.Source()}
		if err := rows.Scan(
			&entry.Date,
			&banCon,
			&itemType,
			&entry.Amount,
			&entry.Service,
			&entry.Tax,
		); err != nil {
			return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error scanning function billing day row: %w", err))
		}
		entry.Code = banquetCode(banCon, itemType)
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewSourceError(r.Source(), window, fmt.Errorf("error iterating function billing day rows: %w", err))
	}

	return result, nil
}
