package services

import (
	"context"
	"log"

	"psc-chapterhub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs scheduled background jobs: publishing due newsletter
// issues and purging expired refresh tokens.
type CronService struct {
	cron              *cron.Cron
	newsletterService *NewsletterService
	refreshTokenRepo  repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:              cron.New(),
		newsletterService: NewNewsletterService(repositories.NewNewsletterRepository(db)),
		refreshTokenRepo:  repositories.NewRefreshTokenRepository(db),
	}
}

// Start registers and launches all jobs
func (s *CronService) Start() {
	// Scheduled newsletters: check every 15 minutes
	s.cron.AddFunc("*/15 * * * *", s.publishDueNewsletters)

	// Expired refresh tokens: purge daily at 03:30
	s.cron.AddFunc("30 3 * * *", s.purgeExpiredTokens)

	s.cron.Start()
	log.Println("🚀 CronService started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) publishDueNewsletters() {
	published, err := s.newsletterService.PublishDue(context.Background())
	if err != nil {
		log.Printf("⚠️ Newsletter publish job failed: %v", err)
		return
	}
	if published > 0 {
		log.Printf("✅ Published %d scheduled newsletter(s)", published)
	}
}

func (s *CronService) purgeExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("⚠️ Refresh token cleanup failed: %v", err)
	}
}
