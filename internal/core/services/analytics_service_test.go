package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and serializes
	// concurrent writers at the pool instead of failing with SQLITE_BUSY.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newTestAnalyticsService(t *testing.T) *AnalyticsService {
	db := setupTestDB(t)
	return NewAnalyticsService(repositories.NewViewCounterRepository(db))
}

func TestTrackViewAccumulatesTotals(t *testing.T) {
	svc := newTestAnalyticsService(t)
	ctx := context.Background()

	const n = 25
	for i := 0; i < n; i++ {
		require.NoError(t, svc.TrackView(ctx, false))
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(n), stats.TotalViews)
	assert.Equal(t, uint64(0), stats.UniqueVisitors)
	require.Len(t, stats.DailyViews, 1, "same-day views must share one bucket")
	assert.Equal(t, uint64(n), stats.DailyViews[0].Views)
	assert.Equal(t, DayKey(time.Now()), stats.DailyViews[0].Day)
}

func TestTrackViewUniqueVisitorFlag(t *testing.T) {
	svc := newTestAnalyticsService(t)
	ctx := context.Background()

	require.NoError(t, svc.TrackView(ctx, true))
	require.NoError(t, svc.TrackView(ctx, false))
	require.NoError(t, svc.TrackView(ctx, true))

	snap, err := svc.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), snap.TotalViews)
	assert.Equal(t, uint64(2), snap.UniqueVisitors)
}

func TestGetSnapshotCreatesCounterLazily(t *testing.T) {
	svc := newTestAnalyticsService(t)

	snap, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), snap.TotalViews)
	assert.Equal(t, uint64(0), snap.UniqueVisitors)
}

func TestDailyHistogramEvictsOldestBeyondThirty(t *testing.T) {
	svc := newTestAnalyticsService(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	// One view per day for 31 days
	for i := 0; i < 31; i++ {
		current = base.AddDate(0, 0, i)
		require.NoError(t, svc.TrackView(ctx, false))
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	// Day one fell off, the running total did not
	assert.Equal(t, uint64(31), stats.TotalViews)
	require.Len(t, stats.DailyViews, repositories.MaxDailyViews)
	assert.Equal(t, "2026-01-02", stats.DailyViews[0].Day)
	assert.Equal(t, "2026-01-31", stats.DailyViews[len(stats.DailyViews)-1].Day)
}

func TestDailyHistogramKeepsInsertionOrder(t *testing.T) {
	svc := newTestAnalyticsService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		current = base.AddDate(0, 0, i)
		require.NoError(t, svc.TrackView(ctx, false))
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.DailyViews, 5)
	for i, day := range stats.DailyViews {
		assert.Equal(t, DayKey(base.AddDate(0, 0, i)), day.Day)
		assert.Equal(t, uint64(1), day.Views)
	}
}

func TestSameDayViewsShareOneBucket(t *testing.T) {
	svc := newTestAnalyticsService(t)
	ctx := context.Background()

	// Different times of the same calendar day
	day := time.Date(2026, 6, 15, 0, 30, 0, 0, time.UTC)
	times := []time.Time{day, day.Add(9 * time.Hour), day.Add(23 * time.Hour)}
	idx := 0
	svc.now = func() time.Time { return times[idx] }

	for idx = 0; idx < len(times); idx++ {
		require.NoError(t, svc.TrackView(ctx, false))
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.DailyViews, 1)
	assert.Equal(t, "2026-06-15", stats.DailyViews[0].Day)
	assert.Equal(t, uint64(3), stats.DailyViews[0].Views)
}

func TestTrackViewConcurrentLosesNothing(t *testing.T) {
	svc := newTestAnalyticsService(t)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(unique bool) {
			defer wg.Done()
			if err := svc.TrackView(ctx, unique); err != nil {
				errs <- err
			}
		}(i%2 == 0)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(workers), stats.TotalViews)
	assert.Equal(t, uint64(workers/2), stats.UniqueVisitors)
	require.Len(t, stats.DailyViews, 1)
	assert.Equal(t, uint64(workers), stats.DailyViews[0].Views)
}

func TestDayKeyFormat(t *testing.T) {
	for _, tc := range []struct {
		in   time.Time
		want string
	}{
		{time.Date(2026, 1, 5, 23, 59, 59, 0, time.UTC), "2026-01-05"},
		{time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), "2026-12-31"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, DayKey(tc.in))
		})
	}
}

func TestHistogramCapHoldsUnderRepeatedEviction(t *testing.T) {
	svc := newTestAnalyticsService(t)
	ctx := context.Background()

	base := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
	current := base
	svc.now = func() time.Time { return current }

	const days = 45
	for i := 0; i < days; i++ {
		current = base.AddDate(0, 0, i)
		// Two views on each day
		require.NoError(t, svc.TrackView(ctx, false))
		require.NoError(t, svc.TrackView(ctx, false))
	}

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(days*2), stats.TotalViews)
	require.Len(t, stats.DailyViews, repositories.MaxDailyViews)
	assert.Equal(t, DayKey(base.AddDate(0, 0, days-repositories.MaxDailyViews)), stats.DailyViews[0].Day)
	for _, d := range stats.DailyViews {
		assert.Equal(t, uint64(2), d.Views, fmt.Sprintf("bucket %s", d.Day))
	}
}
