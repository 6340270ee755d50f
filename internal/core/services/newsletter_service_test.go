package services

import (
	"context"
	"testing"
	"time"

	"psc-chapterhub/internal/adapters/persistence/models"
	"psc-chapterhub/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNewsletterService(t *testing.T) *NewsletterService {
	db := setupTestDB(t)
	return NewNewsletterService(repositories.NewNewsletterRepository(db))
}

func TestCreateNewsletterDraftByDefault(t *testing.T) {
	svc := newTestNewsletterService(t)

	issue, err := svc.Create(context.Background(), 1, &CreateNewsletterInput{
		Title:   "Quarterly Bulletin Q3",
		IssueNo: 12,
		Body:    "Chapter updates for the quarter.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.NewsletterDraft, issue.Status)
	assert.Equal(t, "quarterly-bulletin-q3", issue.Slug)
	assert.Nil(t, issue.ScheduledAt)
}

func TestCreateNewsletterScheduled(t *testing.T) {
	svc := newTestNewsletterService(t)
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	when := now.Add(48 * time.Hour)
	issue, err := svc.Create(context.Background(), 1, &CreateNewsletterInput{
		Title:       "September Issue",
		IssueNo:     13,
		ScheduledAt: &when,
	})
	require.NoError(t, err)
	assert.Equal(t, models.NewsletterScheduled, issue.Status)
}

func TestCreateNewsletterRejectsPastSchedule(t *testing.T) {
	svc := newTestNewsletterService(t)
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	when := now.Add(-time.Hour)
	_, err := svc.Create(context.Background(), 1, &CreateNewsletterInput{
		Title:       "Late Issue",
		ScheduledAt: &when,
	})
	assert.ErrorIs(t, err, ErrScheduleInPast)
}

func TestUpdateNewsletterRejectsPublished(t *testing.T) {
	svc := newTestNewsletterService(t)
	ctx := context.Background()

	issue, err := svc.Create(ctx, 1, &CreateNewsletterInput{Title: "Final Issue"})
	require.NoError(t, err)

	_, err = svc.Publish(ctx, issue.ID)
	require.NoError(t, err)

	title := "Edited after print"
	_, err = svc.Update(ctx, issue.ID, &UpdateNewsletterInput{Title: &title})
	assert.ErrorIs(t, err, ErrAlreadyPublished)
}

func TestPublishNewsletterTwiceFails(t *testing.T) {
	svc := newTestNewsletterService(t)
	ctx := context.Background()

	issue, err := svc.Create(ctx, 1, &CreateNewsletterInput{Title: "One Shot"})
	require.NoError(t, err)

	published, err := svc.Publish(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NewsletterPublished, published.Status)
	require.NotNil(t, published.PublishedAt)

	_, err = svc.Publish(ctx, issue.ID)
	assert.ErrorIs(t, err, ErrAlreadyPublished)
}

func TestPublishDuePublishesOnlyDueIssues(t *testing.T) {
	svc := newTestNewsletterService(t)
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	soon := now.Add(time.Hour)
	later := now.Add(72 * time.Hour)
	due, err := svc.Create(ctx, 1, &CreateNewsletterInput{Title: "Due Issue", ScheduledAt: &soon})
	require.NoError(t, err)
	notDue, err := svc.Create(ctx, 1, &CreateNewsletterInput{Title: "Future Issue", ScheduledAt: &later})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, &CreateNewsletterInput{Title: "Draft Issue"})
	require.NoError(t, err)

	// The clock passes the first schedule but not the second
	now = now.Add(2 * time.Hour)
	count, err := svc.PublishDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := svc.GetByID(ctx, due.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NewsletterPublished, got.Status)

	got, err = svc.GetByID(ctx, notDue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NewsletterScheduled, got.Status)
}

func TestNewsletterNotFound(t *testing.T) {
	svc := newTestNewsletterService(t)
	_, err := svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNewsletterNotFoundSvc)
}
