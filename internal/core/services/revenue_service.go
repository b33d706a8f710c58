package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portsrepo "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/repositories"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/revenue"
	"github.com/hoteldesk/hotel_ops_backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

// revenueService runs the classification engine over every source collection.
// All fan-out happens here; the engine itself is pure and synchronous.
type revenueService struct {
	BaseService
	sources        []portsrepo.RevenueSourceRepository
	occupancy      portsrepo.OccupancyRepository
	collection     portsrepo.CollectionRepository
	tables         map[domain.SourceCollection]*revenue.Classification
	timeout        time.Duration
	maxConcurrency int
	monthlyTarget  decimal.Decimal
}

// NewRevenueService creates the revenue service behind every report endpoint.
func NewRevenueService(cfg *config.Config, repos portsrepo.RepositoryProvider) portssvc.RevenueSvcFacade {
	return &revenueService{
		sources:        repos.Sources,
		occupancy:      repos.Occupancy,
		collection:     repos.Collection,
		tables:         revenue.DefaultTables(),
		timeout:        cfg.ReportTimeout,
		maxConcurrency: cfg.ReportMaxConcurrency,
		monthlyTarget:  cfg.MonthlyRevenueTarget,
	}
}

// tableFor returns the classification table for a source. Every registered
// source must have one; a missing table is a wiring bug, not a data problem.
func (s *revenueService) tableFor(source domain.SourceCollection) (*revenue.Classification, error) {
	table, ok := s.tables[source]
	if !ok {
		return nil, fmt.Errorf("no classification table for source %s", source)
	}
	return table, nil
}

// fetchWindows fetches and accumulates every (window, source) pair
// concurrently, then merges per window. Any single source failure fails the
// whole report: a statement with a silently missing ledger would reconcile
// against nothing.
func (s *revenueService) fetchWindows(ctx context.Context, windows []domain.ReportWindow) ([]revenue.Totals, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// One slot per (window, source); each goroutine writes only its own.
	results := make([][]revenue.Totals, len(windows))
	for i := range results {
		results[i] = make([]revenue.Totals, len(s.sources))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for i, window := range windows {
		for j, source := range s.sources {
			i, j, window, source := i, j, window, source
			g.Go(func() error {
				table, err := s.tableFor(source.Source())
				if err != nil {
					return err
				}
				entries, err := source.FetchWindow(gctx, window)
				if err != nil {
					return err
				}
				results[i][j] = revenue.Accumulate(table, entries)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]revenue.Totals, len(windows))
	for i := range windows {
		merged[i] = revenue.Merge(results[i]...)
	}
	return merged, nil
}

// buildWindow rolls accumulated totals into the full per-window statement.
func buildWindow(t revenue.Totals) domain.WindowStatement {
	sections, grand := revenue.RollUp(t)
	return domain.WindowStatement{
		Categories:        t.Categories,
		Unclassified:      t.Unclassified,
		UnclassifiedCodes: t.UnclassifiedCodes,
		Sections:          sections,
		GrandTotal:        grand,
	}
}

// warnUnclassified surfaces codes the tables do not know. They stay out of
// every section but the money is still visible in the diagnostics.
func (s *revenueService) warnUnclassified(ctx context.Context, window domain.ReportWindow, t revenue.Totals) {
	if len(t.UnclassifiedCodes) == 0 {
		return
	}
	s.LogWarn(ctx, "unclassified transaction codes in window",
		slog.String("window", window.String()),
		slog.Any("codes", t.UnclassifiedCodes),
		slog.String("amount", t.Unclassified.Grand().String()),
	)
}

// Statement computes the Today and MonthToDate statements for the report date.
func (s *revenueService) Statement(ctx context.Context, date time.Time) (*domain.RevenueStatement, error) {
	windows := []domain.ReportWindow{
		domain.TodayWindow(date),
		domain.MonthToDateWindow(date),
	}

	totals, err := s.fetchWindows(ctx, windows)
	if err != nil {
		s.LogError(ctx, err, "revenue statement failed", slog.String("date", domain.Day(date).Format(domain.DateLayout)))
		return nil, err
	}

	for i, window := range windows {
		s.warnUnclassified(ctx, window, totals[i])
	}

	return &domain.RevenueStatement{
		Date:        domain.Day(date),
		Today:       buildWindow(totals[0]),
		MonthToDate: buildWindow(totals[1]),
	}, nil
}

// DashboardSummary condenses the two statement windows into the dashboard
// revenue card and pairs them with today's settled collection.
func (s *revenueService) DashboardSummary(ctx context.Context, date time.Time) (*domain.DashboardSummary, error) {
	windows := []domain.ReportWindow{
		domain.TodayWindow(date),
		domain.MonthToDateWindow(date),
	}

	totals, err := s.fetchWindows(ctx, windows)
	if err != nil {
		s.LogError(ctx, err, "dashboard summary failed", slog.String("date", domain.Day(date).Format(domain.DateLayout)))
		return nil, err
	}

	_, todayGrand := revenue.RollUp(totals[0])
	_, mtdGrand := revenue.RollUp(totals[1])

	settled, err := s.collection.FetchSettledTotals(ctx, windows[0])
	if err != nil {
		s.LogError(ctx, err, "dashboard collection fetch failed")
		return nil, err
	}

	return &domain.DashboardSummary{
		DailyCollection: settled.Grand(),
		TodayRevenue:    todayGrand.Grand,
		MTDRevenue:      mtdGrand.Grand,
		MonthlyTarget:   s.monthlyTarget,
	}, nil
}

// Trend computes the gap-free daily revenue series for the trailing window,
// with occupancy and ADR merged in. Unclassified money is folded into the
// "other" line so the chart total still matches the statements.
func (s *revenueService) Trend(ctx context.Context, date time.Time, days int) ([]domain.DailyRevenue, error) {
	window := domain.TrailingWindow(date, days)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	byDaySets := make([]map[string]revenue.Totals, len(s.sources))
	var occupied []domain.DailyOccupancy
	var totalRooms int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for j, source := range s.sources {
		j, source := j, source
		g.Go(func() error {
			table, err := s.tableFor(source.Source())
			if err != nil {
				return err
			}
			entries, err := source.FetchDaily(gctx, window)
			if err != nil {
				return err
			}
			byDaySets[j] = revenue.AccumulateByDay(table, entries)
			return nil
		})
	}
	g.Go(func() error {
		var err error
		occupied, err = s.occupancy.OccupiedByDay(gctx, window)
		return err
	})
	g.Go(func() error {
		var err error
		totalRooms, err = s.occupancy.TotalRooms(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "revenue trend failed", slog.String("window", window.String()))
		return nil, err
	}

	byDay := revenue.MergeByDay(byDaySets...)
	series := revenue.DailySeries(window, byDay)

	occupiedByDay := make(map[string]int, len(occupied))
	for _, occ := range occupied {
		occupiedByDay[domain.Day(occ.Date).Format(domain.DateLayout)] = occ.OccupiedRooms
	}

	result := make([]domain.DailyRevenue, 0, len(series))
	for _, bucket := range series {
		rooms := occupiedByDay[bucket.Date.Format(domain.DateLayout)]
		result = append(result, domain.DailyRevenue{
			Date:          bucket.Date,
			RoomRevenue:   bucket.Room,
			FnbRevenue:    bucket.Fnb,
			OtherRevenue:  bucket.Other.Add(bucket.Unclassified),
			OccupiedRooms: rooms,
			TotalRooms:    totalRooms,
			ADR:           revenue.ADR(bucket.Room, rooms),
		})
	}
	return result, nil
}
