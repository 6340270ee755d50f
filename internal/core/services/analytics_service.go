package services

import (
	"context"
	"time"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"
)

// AnalyticsService maintains the site-wide view counter: running totals,
// unique-visitor count and a rolling daily histogram capped at the 30 most
// recent day buckets. Whether a view is "unique" is the caller's call; the
// service trusts the flag as given.
type AnalyticsService struct {
	counterRepo *repositories.ViewCounterRepository

	// now is swappable for day-boundary tests
	now func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(counterRepo *repositories.ViewCounterRepository) *AnalyticsService {
	return &AnalyticsService{
		counterRepo: counterRepo,
		now:         time.Now,
	}
}

// Snapshot represents the public view counter totals
type Snapshot struct {
	TotalViews     uint64 `json:"total_views"`
	UniqueVisitors uint64 `json:"unique_visitors"`
}

// Stats represents the full counter state for the admin dashboard
type Stats struct {
	TotalViews     uint64              `json:"total_views"`
	UniqueVisitors uint64              `json:"unique_visitors"`
	DailyViews     []*models.DailyView `json:"daily_views"`
	LastUpdated    time.Time           `json:"last_updated"`
}

// DayKey normalizes a timestamp to its calendar-date bucket key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// GetSnapshot returns the current totals, creating the counter lazily on
// first read.
func (s *AnalyticsService) GetSnapshot(ctx context.Context) (*Snapshot, error) {
	counter, err := s.counterRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		TotalViews:     counter.TotalViews,
		UniqueVisitors: counter.UniqueVisitors,
	}, nil
}

// GetStats returns totals plus the retained daily histogram.
func (s *AnalyticsService) GetStats(ctx context.Context) (*Stats, error) {
	counter, err := s.counterRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	days, err := s.counterRepo.ListDays(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalViews:     counter.TotalViews,
		UniqueVisitors: counter.UniqueVisitors,
		DailyViews:     days,
		LastUpdated:    counter.LastUpdated,
	}, nil
}

// TrackView records one page view. Totals are bumped with atomic column
// increments and the day bucket goes through an upsert keyed on the
// calendar date, so concurrent calls neither lose updates nor duplicate
// buckets. Evicting old buckets trims the histogram only; the running
// totals keep counting.
func (s *AnalyticsService) TrackView(ctx context.Context, isUnique bool) error {
	if err := s.counterRepo.Ensure(ctx); err != nil {
		return err
	}

	now := s.now()
	if err := s.counterRepo.IncrementTotals(ctx, isUnique, now); err != nil {
		return err
	}

	if err := s.counterRepo.UpsertDay(ctx, DayKey(now)); err != nil {
		return err
	}

	count, err := s.counterRepo.CountDays(ctx)
	if err != nil {
		return err
	}
	if count > repositories.MaxDailyViews {
		return s.counterRepo.TrimDays(ctx, repositories.MaxDailyViews)
	}
	return nil
}
