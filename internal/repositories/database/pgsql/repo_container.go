package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository against one connection pool.
// Source order is the merge order, which is additive and therefore only
// cosmetic in the output.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Sources: []portsrepo.RevenueSourceRepository{
			newGuestLedgerRepository(dbPool),
			newOutletSalesRepository(dbPool),
			newOutletSalesBRepository(dbPool),
			newBanquetRepository(dbPool),
			newSpaRepository(dbPool),
		},
		Occupancy:  newOccupancyRepository(dbPool),
		Collection: newCollectionRepository(dbPool),
		UserRepo:   newUserRepository(dbPool),
	}
}
