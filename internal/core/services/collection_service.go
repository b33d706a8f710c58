package services

import (
	"context"
	"log/slog"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
)

// collectionService serves the cashier's daily collection report.
type collectionService struct {
	BaseService
	repo portsrepo.CollectionRepository
}

// NewCollectionService creates the daily collection service.
func NewCollectionService(repo portsrepo.CollectionRepository) portssvc.CollectionSvcFacade {
	return &collectionService{repo: repo}
}

// DailyCollection returns the settled folio lines and method totals for the
// window. Totals come from the view, not from re-summing the details, so the
// report matches the cashier's figures even if the detail query is trimmed
// later.
func (s *collectionService) DailyCollection(ctx context.Context, window domain.ReportWindow) (*domain.DailyCollectionReport, error) {
	details, err := s.repo.FetchDetails(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "daily collection details failed", slog.String("window", window.String()))
		return nil, err
	}

	totals, err := s.repo.FetchTotals(ctx, window)
	if err != nil {
		s.LogError(ctx, err, "daily collection totals failed", slog.String("window", window.String()))
		return nil, err
	}

	return &domain.DailyCollectionReport{
		Window:  window,
		Details: details,
		Totals:  totals,
	}, nil
}
