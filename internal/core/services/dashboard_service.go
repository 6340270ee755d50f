package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardService handles admin dashboard aggregates
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	// Account statistics
	TotalUsers       int64 `json:"total_users"`
	TotalAdmins      int64 `json:"total_admins"`
	TotalEditors     int64 `json:"total_editors"`
	TotalCounsellors int64 `json:"total_counsellors"`

	// Content statistics
	TotalEvents      int64 `json:"total_events"`
	UpcomingEvents   int64 `json:"upcoming_events"`
	TotalNewsPosts   int64 `json:"total_news_posts"`
	TotalResearch    int64 `json:"total_research"`
	TotalNewsletters int64 `json:"total_newsletters"`
	ScheduledIssues  int64 `json:"scheduled_issues"`
	TotalMembers     int64 `json:"total_members"`

	// Traffic
	TotalViews     uint64 `json:"total_views"`
	UniqueVisitors uint64 `json:"unique_visitors"`

	// Recent activity
	EventsThisMonth int64 `json:"events_this_month"`
	PostsThisMonth  int64 `json:"posts_this_month"`
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	// Account counts by role
	s.db.WithContext(ctx).Table("users").Where("deleted_at IS NULL").Count(&data.TotalUsers)
	s.db.WithContext(ctx).Table("users").Where("role IN ? AND deleted_at IS NULL", []string{"super-admin", "branch-admin"}).Count(&data.TotalAdmins)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", "editor").Count(&data.TotalEditors)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", "counsellor").Count(&data.TotalCounsellors)

	// Content counts
	s.db.WithContext(ctx).Table("events").Where("deleted_at IS NULL").Count(&data.TotalEvents)
	s.db.WithContext(ctx).Table("events").
		Where("is_published = ? AND starts_at >= ? AND deleted_at IS NULL", true, time.Now()).
		Count(&data.UpcomingEvents)
	s.db.WithContext(ctx).Table("news_posts").Where("deleted_at IS NULL").Count(&data.TotalNewsPosts)
	s.db.WithContext(ctx).Table("research_items").Where("deleted_at IS NULL").Count(&data.TotalResearch)
	s.db.WithContext(ctx).Table("newsletters").Where("deleted_at IS NULL").Count(&data.TotalNewsletters)
	s.db.WithContext(ctx).Table("newsletters").
		Where("status = ? AND deleted_at IS NULL", "SCHEDULED").
		Count(&data.ScheduledIssues)
	s.db.WithContext(ctx).Table("member_profiles").Where("deleted_at IS NULL").Count(&data.TotalMembers)

	// Traffic snapshot from the singleton counter
	var counter struct {
		TotalViews     uint64
		UniqueVisitors uint64
	}
	s.db.WithContext(ctx).Table("site_views").
		Select("total_views, unique_visitors").
		Limit(1).
		Scan(&counter)
	data.TotalViews = counter.TotalViews
	data.UniqueVisitors = counter.UniqueVisitors

	// This month
	startOfMonth := time.Now().AddDate(0, 0, -time.Now().Day()+1).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("events").
		Where("created_at >= ? AND deleted_at IS NULL", startOfMonth).
		Count(&data.EventsThisMonth)
	s.db.WithContext(ctx).Table("news_posts").
		Where("created_at >= ? AND deleted_at IS NULL", startOfMonth).
		Count(&data.PostsThisMonth)

	return data, nil
}
