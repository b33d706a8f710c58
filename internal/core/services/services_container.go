package services

import (
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Revenue:    NewRevenueService(cfg, repos),
		Collection: NewCollectionService(repos.Collection),
		User:       NewUserService(repos.UserRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RevenueSvcFacade    = (*revenueService)(nil)
	_ portssvc.CollectionSvcFacade = (*collectionService)(nil)
	_ portssvc.UserSvcFacade       = (*userService)(nil)
)
