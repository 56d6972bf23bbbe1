package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RolePro        UserRole = "pro"
	RoleUser       UserRole = "user"
)

type SubscriptionStatus string

const (
	SubscriptionFree     SubscriptionStatus = "free"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

// User is any person in a brand: end user, assigned professional or admin.
// Super admins are the only brand-less users. Email and phone are unique
// per brand, not globally — the same address may exist under two brands.
// Users are soft-disabled via IsActive and never hard-deleted.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	BrandID *uuid.UUID `gorm:"type:uuid;index:ix_users_brand;uniqueIndex:uq_users_brand_email;uniqueIndex:uq_users_brand_phone" json:"brand_id,omitempty"`

	Name  string `gorm:"size:120;not null" json:"name"`
	Email string `gorm:"size:255;not null;uniqueIndex:uq_users_brand_email" json:"email"`
	Phone string `gorm:"size:30;not null;uniqueIndex:uq_users_brand_phone" json:"phone"` // E.164, e.g. +551199...

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Role     UserRole `gorm:"size:20;not null;default:'user';index:ix_users_role" json:"role"`
	IsActive bool     `gorm:"not null;default:true" json:"is_active"`

	// challenge funnel and WhatsApp AI trial upsell
	ChallengeStartedAt    *time.Time `json:"challenge_started_at,omitempty"`
	WhatsappAIActiveUntil *time.Time `json:"whatsapp_ai_active_until,omitempty"`

	// current subscription
	PlanID             *uuid.UUID         `gorm:"type:uuid" json:"plan_id,omitempty"`
	SubscriptionStatus SubscriptionStatus `gorm:"size:20;not null;default:'free'" json:"subscription_status"`
	PlanValidUntil     *time.Time         `json:"plan_valid_until,omitempty"`

	// customer id at the payment gateway
	ExternalCustomerID *string `gorm:"size:120" json:"external_customer_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Brand *Brand `gorm:"foreignKey:BrandID" json:"-"`
	Plan  *Plan  `gorm:"foreignKey:PlanID" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
