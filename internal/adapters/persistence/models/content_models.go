package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Chapter Content Tables
// ============================================================

// Branch represents a regional branch of the chapter
type Branch struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Slug        string         `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Region      string         `gorm:"size:100" json:"region"`
	Description string         `gorm:"type:text" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Branch) TableName() string {
	return "branches"
}

// Event represents a chapter event
type Event struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Slug        string         `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	Location    string         `gorm:"size:200" json:"location"`
	Branch      string         `gorm:"size:50;index" json:"branch"`
	StartsAt    time.Time      `gorm:"not null;index" json:"starts_at"`
	EndsAt      *time.Time     `json:"ends_at"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	CreatedBy   uint           `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (Event) TableName() string {
	return "events"
}

// MemberProfile represents a committee/chapter member listing entry
type MemberProfile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Position  string         `gorm:"size:100" json:"position"`
	Committee string         `gorm:"size:100;index" json:"committee"`
	Branch    string         `gorm:"size:50;index" json:"branch"`
	Email     string         `gorm:"size:100" json:"email"`
	Bio       string         `gorm:"type:text" json:"bio"`
	PhotoURL  string         `gorm:"size:255" json:"photo_url"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (MemberProfile) TableName() string {
	return "member_profiles"
}

// NewsPost represents a news/content page entry
type NewsPost struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Slug        string         `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Summary     string         `gorm:"size:500" json:"summary"`
	Body        string         `gorm:"type:text" json:"body"`
	Branch      string         `gorm:"size:50;index" json:"branch"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedBy   uint           `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (NewsPost) TableName() string {
	return "news_posts"
}

// ResearchItem represents a research publication listing
type ResearchItem struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Authors     string         `gorm:"size:255" json:"authors"`
	Abstract    string         `gorm:"type:text" json:"abstract"`
	Link        string         `gorm:"size:255" json:"link"`
	Year        int            `gorm:"index" json:"year"`
	Branch      string         `gorm:"size:50;index" json:"branch"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ResearchItem) TableName() string {
	return "research_items"
}

// Newsletter statuses
const (
	NewsletterDraft     = "DRAFT"
	NewsletterScheduled = "SCHEDULED"
	NewsletterPublished = "PUBLISHED"
)

// Newsletter represents a newsletter issue
type Newsletter struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Slug        string         `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	IssueNo     int            `gorm:"index" json:"issue_no"`
	Body        string         `gorm:"type:text" json:"body"`
	Status      string         `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	ScheduledAt *time.Time     `gorm:"index" json:"scheduled_at"`
	PublishedAt *time.Time     `json:"published_at"`
	CreatedBy   uint           `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

func (Newsletter) TableName() string {
	return "newsletters"
}

// Award represents a chapter award entry
type Award struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Recipient   string         `gorm:"size:100;not null" json:"recipient"`
	Year        int            `gorm:"index" json:"year"`
	Description string         `gorm:"type:text" json:"description"`
	Branch      string         `gorm:"size:50;index" json:"branch"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Award) TableName() string {
	return "awards"
}

// CarouselSlide represents a homepage carousel slide
type CarouselSlide struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:200" json:"title"`
	Caption   string         `gorm:"size:500" json:"caption"`
	ImageURL  string         `gorm:"size:255;not null" json:"image_url"`
	LinkURL   string         `gorm:"size:255" json:"link_url"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (CarouselSlide) TableName() string {
	return "carousel_slides"
}
