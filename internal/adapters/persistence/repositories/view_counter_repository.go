package repositories

import (
	"context"
	"errors"
	"time"

	"psc-chapterhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxDailyViews is how many daily buckets the histogram retains. Older
// buckets are evicted FIFO; the running totals are never trimmed.
const MaxDailyViews = 30

// ViewCounterRepository handles the singleton site view counter. All writes
// go through atomic SQL increments and conflict-tolerant inserts so that
// concurrent track calls never lose updates or duplicate the singleton.
type ViewCounterRepository struct {
	db *gorm.DB
}

// NewViewCounterRepository creates a new view counter repository
func NewViewCounterRepository(db *gorm.DB) *ViewCounterRepository {
	return &ViewCounterRepository{db: db}
}

// Ensure creates the singleton counter row if it does not exist yet.
// The fixed primary key plus DO NOTHING makes concurrent first requests
// converge on a single row.
func (r *ViewCounterRepository) Ensure(ctx context.Context) error {
	counter := models.ViewCounter{
		ID:          models.ViewCounterID,
		LastUpdated: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&counter).Error
}

// Get returns the singleton counter, creating it lazily when absent.
func (r *ViewCounterRepository) Get(ctx context.Context) (*models.ViewCounter, error) {
	var counter models.ViewCounter
	err := r.db.WithContext(ctx).First(&counter, models.ViewCounterID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := r.Ensure(ctx); err != nil {
			return nil, err
		}
		err = r.db.WithContext(ctx).First(&counter, models.ViewCounterID).Error
	}
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

// IncrementTotals bumps total_views (and unique_visitors when unique) with
// atomic column expressions.
func (r *ViewCounterRepository) IncrementTotals(ctx context.Context, unique bool, now time.Time) error {
	updates := map[string]interface{}{
		"total_views":  gorm.Expr("total_views + ?", 1),
		"last_updated": now,
	}
	if unique {
		updates["unique_visitors"] = gorm.Expr("unique_visitors + ?", 1)
	}
	return r.db.WithContext(ctx).
		Model(&models.ViewCounter{}).
		Where("id = ?", models.ViewCounterID).
		UpdateColumns(updates).Error
}

// UpsertDay increments the bucket for the given day key, inserting it on
// first sight. The (counter_id, day) unique index turns the concurrent
// insert race into an increment.
func (r *ViewCounterRepository) UpsertDay(ctx context.Context, day string) error {
	bucket := models.DailyView{
		CounterID: models.ViewCounterID,
		Day:       day,
		Views:     1,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "counter_id"}, {Name: "day"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"views": gorm.Expr("views + ?", 1)}),
		}).
		Create(&bucket).Error
}

// TrimDays evicts the oldest daily buckets beyond keep, by insertion order.
// The threshold-id two-step keeps the DELETE portable (MySQL rejects a
// subquery on the deleted table).
func (r *ViewCounterRepository) TrimDays(ctx context.Context, keep int) error {
	var threshold models.DailyView
	err := r.db.WithContext(ctx).
		Where("counter_id = ?", models.ViewCounterID).
		Order("id DESC").
		Offset(keep - 1).
		First(&threshold).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // fewer than keep buckets, nothing to evict
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("counter_id = ? AND id < ?", models.ViewCounterID, threshold.ID).
		Delete(&models.DailyView{}).Error
}

// ListDays returns the retained daily buckets in insertion order.
func (r *ViewCounterRepository) ListDays(ctx context.Context) ([]*models.DailyView, error) {
	var days []*models.DailyView
	err := r.db.WithContext(ctx).
		Where("counter_id = ?", models.ViewCounterID).
		Order("id").
		Find(&days).Error
	return days, err
}

// CountDays counts the retained daily buckets.
func (r *ViewCounterRepository) CountDays(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.DailyView{}).
		Where("counter_id = ?", models.ViewCounterID).
		Count(&count).Error
	return count, err
}
