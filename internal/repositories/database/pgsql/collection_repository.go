package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// collectionRepository reads the settled daily-collection view. Serial 19 is
// the running-balance carry row the cashier report prints separately; it is
// never part of the collection figures.
type collectionRepository struct {
	BaseRepository
}

func newCollectionRepository(db *pgxpool.Pool) portsrepo.CollectionRepository {
	return &collectionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FetchDetails returns the folio lines settled in the window, ordered the way
// the cashier report prints them.
func (r *collectionRepository) FetchDetails(ctx context.Context, window domain.ReportWindow) ([]domain.CollectionItem, error) {
	query := `
		SELECT
			sl,
			date,
			COALESCE(itemid, ''),
			COALESCE(trbillno, ''),
			COALESCE(billno, ''),
			COALESCE(roomno, ''),
			COALESCE(name, ''),
			COALESCE(nameco, ''),
			COALESCE(chargeto, ''),
			COALESCE(payment, ''),
			COALESCE(cheque, 0),
			COALESCE(cash, 0),
			COALESCE(card, 0),
			COALESCE(com, 0),
			COALESCE(bkash, 0)
		FROM vw_daily_collection
		WHERE date BETWEEN $1 AND $2
			AND sl NOT IN (19)
		ORDER BY sl, payment
	`

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("error querying daily collection: %w", err)
	}
	defer rows.Close()

	var result []domain.CollectionItem
	for rows.Next() {
		var item domain.CollectionItem
		if err := rows.Scan(
			&item.Serial,
			&item.Date,
			&item.ItemID,
			&item.TrBillNo,
			&item.BillNo,
			&item.RoomNo,
			&item.GuestName,
			&item.Company,
			&item.ChargeTo,
			&item.Payment,
			&item.Cheque,
			&item.Cash,
			&item.Card,
			&item.Commission,
			&item.Mobile,
		); err != nil {
			return nil, fmt.Errorf("error scanning daily collection row: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily collection rows: %w", err)
	}

	return result, nil
}

// FetchTotals sums every settlement method over the window.
func (r *collectionRepository) FetchTotals(ctx context.Context, window domain.ReportWindow) (domain.CollectionTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(cheque), 0),
			COALESCE(SUM(cash), 0),
			COALESCE(SUM(card), 0),
			COALESCE(SUM(com), 0),
			COALESCE(SUM(bkash), 0)
		FROM vw_daily_collection
		WHERE date BETWEEN $1 AND $2
			AND sl NOT IN (19)
	`
	return r.scanTotals(ctx, query, window)
}

// FetchSettledTotals additionally excludes adjustment settlements, which move
// money between folios without collecting any.
func (r *collectionRepository) FetchSettledTotals(ctx context.Context, window domain.ReportWindow) (domain.CollectionTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(cheque), 0),
			COALESCE(SUM(cash), 0),
			COALESCE(SUM(card), 0),
			COALESCE(SUM(com), 0),
			COALESCE(SUM(bkash), 0)
		FROM vw_daily_collection
		WHERE date BETWEEN $1 AND $2
			AND sl NOT IN (19)
			AND payment NOT IN ('Adjustment')
	`
	return r.scanTotals(ctx, query, window)
}

func (r *collectionRepository) scanTotals(ctx context.Context, query string, window domain.ReportWindow) (domain.CollectionTotals, error) {
	var totals domain.CollectionTotals
	err := r.Pool.QueryRow(ctx, query, window.Start, window.End).Scan(
		&totals.Cheque,
		&totals.Cash,
		&totals.Card,
		&totals.Commission,
		&totals.Mobile,
	)
	if err != nil {
		return domain.CollectionTotals{}, fmt.Errorf("error summing daily collection: %w", err)
	}
	return totals, nil
}
