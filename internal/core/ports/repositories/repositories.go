package repositories

// RepositoryProvider bundles every repository the service layer needs, so
// wiring happens once at startup.
type RepositoryProvider struct {
	Sources    []RevenueSourceRepository
	Occupancy  OccupancyRepository
	Collection CollectionRepository
	UserRepo   UserRepository
}
