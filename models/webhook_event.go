package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentWebhookEvent is the append-only audit record of an inbound
// payment-provider callback (kirvano, hotmart, ...). Rows are never
// updated or deleted; they are the system of record for replay and
// reconciliation.
type PaymentWebhookEvent struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BrandID uuid.UUID `gorm:"type:uuid;not null;index:ix_webhook_brand_provider" json:"brand_id"`

	Provider        string  `gorm:"size:40;not null;index:ix_webhook_brand_provider" json:"provider"`
	EventType       string  `gorm:"size:80;not null;index:ix_webhook_event_type" json:"event_type"` // payment.approved, subscription.renewed...
	ExternalEventID *string `gorm:"size:120" json:"external_event_id,omitempty"`

	Payload datatypes.JSONMap `gorm:"not null" json:"payload"`

	ReceivedAt time.Time `gorm:"autoCreateTime" json:"received_at"`
}

func (PaymentWebhookEvent) TableName() string { return "payment_webhook_events" }

func (e *PaymentWebhookEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
