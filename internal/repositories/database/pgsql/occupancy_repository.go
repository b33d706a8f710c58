package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// occupancyRepository reads the room control board and the room master list.
type occupancyRepository struct {
	BaseRepository
}

func newOccupancyRepository(db *pgxpool.Pool) portsrepo.OccupancyRepository {
	return &occupancyRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// TotalRooms counts sellable rooms. FOLIO rows are posting pseudo-rooms, not
// inventory.
func (r *occupancyRepository) TotalRooms(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(room_no)
		FROM room_list
		WHERE room_type NOT IN ('FOLIO')
	`

	var total int
	if err := r.Pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting rooms: %w", err)
	}
	return total, nil
}

// OccupiedByDay returns occupied-room counts per night in the window.
func (r *occupancyRepository) OccupiedByDay(ctx context.Context, window domain.ReportWindow) ([]domain.DailyOccupancy, error) {
	query := `
		SELECT
			date,
			COUNT(roomno) AS occupied
		FROM room_control
		WHERE date BETWEEN $1 AND $2
		GROUP BY date
	`

	rows, err := r.Pool.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("error querying room control: %w", err)
	}
	defer rows.Close()

	var result []domain.DailyOccupancy
	for rows.Next() {
		var occ domain.DailyOccupancy
		if err := rows.Scan(&occ.Date, &occ.OccupiedRooms); err != nil {
			return nil, fmt.Errorf("error scanning room control row: %w", err)
		}
		result = append(result, occ)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room control rows: %w", err)
	}

	return result, nil
}
