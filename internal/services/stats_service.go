package services

import (
	"context"
	"strings"
	"time"

	"github.com/Johnmalala/fedhaplus-sub001/internal/models"
	"github.com/Johnmalala/fedhaplus-sub001/internal/repositories"
	"github.com/Johnmalala/fedhaplus-sub001/pkg/utils"

	"github.com/google/uuid"
)

// newGrowthPercent is the growth value reported when the previous month had
// no revenue but the current month does. Growth against a zero base is
// undefined; this service reports such months as 100% new growth.
const newGrowthPercent = 100.0

// DefaultStatsTimeout bounds a single aggregation's database work when the
// caller does not configure one. A timed-out fetch is treated like any other
// fetch failure.
const DefaultStatsTimeout = 10 * time.Second

// StatsService computes the dashboard summary for a business. Failures never
// escape: a fetch error yields an all-zero summary, so the dashboard renders
// empty tiles instead of crashing.
type StatsService interface {
	GetBusinessStats(ctx context.Context, businessID uuid.UUID, businessType models.BusinessType, now time.Time) *models.StatsSummary
}

type statsService struct {
	revenueRepo repositories.RevenueRepository
	loc         *time.Location
	timeout     time.Duration
}

// NewStatsService creates a new instance of StatsService. Month windows are
// resolved in loc, the fixed reporting timezone; nil falls back to UTC.
func NewStatsService(rr repositories.RevenueRepository, loc *time.Location, timeout time.Duration) StatsService {
	if loc == nil {
		loc = time.UTC
	}
	if timeout <= 0 {
		timeout = DefaultStatsTimeout
	}
	return &statsService{revenueRepo: rr, loc: loc, timeout: timeout}
}

// GetBusinessStats fetches the business's revenue records via its category
// mapping and reduces them into a StatsSummary relative to now. The caller
// supplies now so dashboards and tests pin the reference instant explicitly.
func (s *statsService) GetBusinessStats(ctx context.Context, businessID uuid.UUID, businessType models.BusinessType, now time.Time) *models.StatsSummary {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	source := SourceForBusinessType(businessType)

	records, err := s.fetchRecords(ctx, businessID, source.Collection)
	if err != nil {
		utils.LogError(err, "GetBusinessStats: failed to fetch revenue records, returning zeroed summary")
		return &models.StatsSummary{}
	}

	curStart, curEnd := monthBounds(now.In(s.loc))
	prevStart := curStart.AddDate(0, -1, 0)
	prevEnd := curStart.Add(-time.Nanosecond)

	summary := &models.StatsSummary{}
	var lastMonthRevenue float64
	for _, rec := range records {
		amount := NormalizeAmount(rec, source.AmountFields)
		summary.TotalRevenue += amount
		summary.TotalTransactions++

		ts := rec.OccurredAt.In(s.loc)
		if inWindow(ts, curStart, curEnd) {
			summary.MonthlyRevenue += amount
			summary.MonthlyTransactions++
		} else if inWindow(ts, prevStart, prevEnd) {
			lastMonthRevenue += amount
		}
	}

	summary.RevenueGrowthPercent = growthPercent(summary.MonthlyRevenue, lastMonthRevenue)

	customers, err := s.countCustomers(ctx, businessID, source.CustomerCount, records)
	if err != nil {
		utils.LogError(err, "GetBusinessStats: failed to count customers, returning zeroed summary")
		return &models.StatsSummary{}
	}
	summary.TotalCustomers = customers

	return summary
}

// fetchRecords dispatches to the repository method backing the selected
// collection.
func (s *statsService) fetchRecords(ctx context.Context, businessID uuid.UUID, collection RevenueCollection) ([]models.RevenueRecord, error) {
	switch collection {
	case CollectionRentPayments:
		return s.revenueRepo.FetchRentPayments(ctx, businessID)
	case CollectionFeePayments:
		return s.revenueRepo.FetchFeePayments(ctx, businessID)
	case CollectionBookings:
		return s.revenueRepo.FetchBookings(ctx, businessID)
	default:
		return s.revenueRepo.FetchSales(ctx, businessID)
	}
}

// countCustomers resolves TotalCustomers per the source's mode. Distinct
// identifier counting and the active-entity counts are different quantities;
// only the category decides which one a dashboard shows.
func (s *statsService) countCustomers(ctx context.Context, businessID uuid.UUID, mode CustomerCountMode, records []models.RevenueRecord) (int, error) {
	switch mode {
	case CountActiveTenants:
		return s.revenueRepo.CountActiveTenants(ctx, businessID)
	case CountActiveStudents:
		return s.revenueRepo.CountActiveStudents(ctx, businessID)
	default:
		return countDistinctCustomers(records), nil
	}
}

// countDistinctCustomers counts distinct non-empty customer identifiers.
func countDistinctCustomers(records []models.RevenueRecord) int {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.CustomerRef == nil {
			continue
		}
		ref := strings.TrimSpace(*rec.CustomerRef)
		if ref == "" {
			continue
		}
		seen[ref] = struct{}{}
	}
	return len(seen)
}

// growthPercent computes month-over-month growth. A month growing out of a
// zero base is reported as newGrowthPercent; two idle months are flat.
func growthPercent(monthlyRevenue, lastMonthRevenue float64) float64 {
	if lastMonthRevenue > 0 {
		return (monthlyRevenue - lastMonthRevenue) / lastMonthRevenue * 100
	}
	if monthlyRevenue > 0 {
		return newGrowthPercent
	}
	return 0
}

// monthBounds returns the first and last instant of the calendar month
// containing t, in t's location.
func monthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// inWindow reports whether t falls within [start, end] inclusive.
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
