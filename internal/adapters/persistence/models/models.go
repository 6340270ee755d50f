package models

import (
	"encoding/json"
	"time"

	"psc-chapterhub/internal/core/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Password    string         `gorm:"size:255;not null" json:"-"`
	Role        string         `gorm:"size:20;default:'member'" json:"role"`
	Branch      string         `gorm:"size:50;index" json:"branch"`
	Permissions datatypes.JSON `json:"permissions"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// PermissionList decodes the explicit permission grants. A malformed or
// empty column yields nil, which the authorization model treats as "no
// extra grants".
func (u *User) PermissionList() []string {
	if len(u.Permissions) == 0 {
		return nil
	}
	var perms []string
	if err := json.Unmarshal(u.Permissions, &perms); err != nil {
		return nil
	}
	return perms
}

// SetPermissionList encodes explicit permission grants into the JSON column.
func (u *User) SetPermissionList(perms []string) error {
	raw, err := json.Marshal(perms)
	if err != nil {
		return err
	}
	u.Permissions = datatypes.JSON(raw)
	return nil
}

// ToActor maps the stored user onto the authorization model's actor.
func (u *User) ToActor() *domain.Actor {
	perms := u.PermissionList()
	actorPerms := make([]domain.Permission, len(perms))
	for i, p := range perms {
		actorPerms[i] = domain.Permission(p)
	}
	return &domain.Actor{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        domain.Role(u.Role),
		Branch:      u.Branch,
		Permissions: actorPerms,
	}
}

// UserResponse DTO
type UserResponse struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	RoleDisplay string    `json:"role_display"`
	Branch      string    `json:"branch,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		RoleDisplay: domain.RoleDisplayName(domain.Role(u.Role)),
		Branch:      u.Branch,
		Permissions: u.PermissionList(),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// View Counter Tables
// ============================================================

// ViewCounterID is the fixed primary key of the singleton counter row.
// Writing through a well-known ID keeps concurrent first requests from
// creating duplicate counters.
const ViewCounterID uint = 1

// ViewCounter represents the site_views singleton
type ViewCounter struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	TotalViews     uint64    `gorm:"not null;default:0" json:"total_views"`
	UniqueVisitors uint64    `gorm:"not null;default:0" json:"unique_visitors"`
	LastUpdated    time.Time `json:"last_updated"`
}

func (ViewCounter) TableName() string {
	return "site_views"
}

// DailyView represents one calendar day's bucket of the view histogram.
// Day holds a normalized "YYYY-MM-DD" key so same-day matching never
// depends on timestamp or locale formatting.
type DailyView struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	CounterID uint   `gorm:"not null;uniqueIndex:idx_counter_day,priority:1" json:"-"`
	Day       string `gorm:"size:10;not null;uniqueIndex:idx_counter_day,priority:2" json:"date"`
	Views     uint64 `gorm:"not null;default:1" json:"views"`
}

func (DailyView) TableName() string {
	return "site_view_days"
}

// ============================================================
// Site Settings
// ============================================================

// Setting represents site_settings table (key-value)
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "site_settings"
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Auth
		&User{},
		&RefreshToken{},
		// Chapter content
		&Branch{},
		&Event{},
		&MemberProfile{},
		&NewsPost{},
		&ResearchItem{},
		&Newsletter{},
		&Award{},
		&CarouselSlide{},
		// Analytics & settings
		&ViewCounter{},
		&DailyView{},
		&Setting{},
	)
}
