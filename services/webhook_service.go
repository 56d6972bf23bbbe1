package services

import (
	"errors"
	"time"

	"fitbrand-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WebhookService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewWebhookService(db *gorm.DB, log *zap.Logger) *WebhookService {
	return &WebhookService{db: db, log: log}
}

// SubscriptionTransition maps a provider event type to the subscription
// status it should leave the user in. ok is false for event types that
// carry no subscription meaning (they are still audited).
func SubscriptionTransition(eventType string) (status models.SubscriptionStatus, ok bool) {
	switch eventType {
	case "payment.approved", "subscription.activated", "subscription.renewed":
		return models.SubscriptionActive, true
	case "subscription.canceled":
		return models.SubscriptionCanceled, true
	case "payment.refused", "payment.past_due":
		return models.SubscriptionPastDue, true
	case "subscription.expired":
		return models.SubscriptionExpired, true
	}
	return "", false
}

// PlanValidUntil computes the paid-through date for a plan activated at
// a given instant.
func PlanValidUntil(from time.Time, durationMonths int) time.Time {
	if durationMonths < 1 {
		durationMonths = 1
	}
	return from.AddDate(0, durationMonths, 0)
}

// Ingest appends the audit row first, then applies any recognized
// subscription transition. Processing failures never undo the audit
// record: the event stays on file for replay.
func (s *WebhookService) Ingest(brandID uuid.UUID, provider string, payload datatypes.JSONMap) (*models.PaymentWebhookEvent, error) {
	eventType, _ := payload["event_type"].(string)
	if eventType == "" {
		eventType, _ = payload["type"].(string)
	}
	if eventType == "" {
		eventType = "unknown"
	}

	event := models.PaymentWebhookEvent{
		BrandID:   brandID,
		Provider:  provider,
		EventType: eventType,
		Payload:   payload,
	}
	if raw, ok := payload["event_id"].(string); ok && raw != "" {
		event.ExternalEventID = &raw
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}

	s.log.Info("webhook received",
		zap.String("provider", provider),
		zap.String("event_type", eventType),
		zap.String("brand_id", brandID.String()),
	)

	if err := s.apply(brandID, eventType, payload); err != nil {
		s.log.Warn("webhook processing failed, event kept for replay",
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
	}
	return &event, nil
}

// apply mutates the addressed user's subscription fields. The user is
// matched by external customer id first, then by email, always inside
// the webhook's brand.
func (s *WebhookService) apply(brandID uuid.UUID, eventType string, payload datatypes.JSONMap) error {
	status, ok := SubscriptionTransition(eventType)
	if !ok {
		return nil
	}

	user, err := s.findUser(brandID, payload)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{"subscription_status": status}

	if customerID, ok := payload["customer_id"].(string); ok && customerID != "" {
		updates["external_customer_id"] = customerID
	}

	if status == models.SubscriptionActive {
		if productID, ok := payload["product_id"].(string); ok && productID != "" {
			var plan models.Plan
			err := s.db.Where("brand_id = ? AND external_product_id = ?", brandID, productID).First(&plan).Error
			if err == nil {
				updates["plan_id"] = plan.ID
				updates["plan_valid_until"] = PlanValidUntil(time.Now(), plan.DurationMonths)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return err
	}

	s.log.Info("subscription updated",
		zap.String("user_id", user.ID.String()),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *WebhookService) findUser(brandID uuid.UUID, payload datatypes.JSONMap) (*models.User, error) {
	var user models.User

	if customerID, ok := payload["customer_id"].(string); ok && customerID != "" {
		err := s.db.Where("brand_id = ? AND external_customer_id = ?", brandID, customerID).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if email, ok := payload["customer_email"].(string); ok && email != "" {
		err := s.db.Where("brand_id = ? AND email = ?", brandID, NormalizeEmail(email)).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, ErrNotFound
}

// ListEvents is the admin audit surface, newest first.
func (s *WebhookService) ListEvents(brandID uuid.UUID, limit int) ([]models.PaymentWebhookEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var events []models.PaymentWebhookEvent
	err := s.db.Where("brand_id = ?", brandID).
		Order("received_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
