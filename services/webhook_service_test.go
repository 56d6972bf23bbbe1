package services

import (
	"testing"
	"time"

	"fitbrand-backend/models"
)

func TestSubscriptionTransition(t *testing.T) {
	cases := []struct {
		eventType string
		status    models.SubscriptionStatus
		ok        bool
	}{
		{"payment.approved", models.SubscriptionActive, true},
		{"subscription.activated", models.SubscriptionActive, true},
		{"subscription.renewed", models.SubscriptionActive, true},
		{"subscription.canceled", models.SubscriptionCanceled, true},
		{"payment.refused", models.SubscriptionPastDue, true},
		{"payment.past_due", models.SubscriptionPastDue, true},
		{"subscription.expired", models.SubscriptionExpired, true},
		{"refund.requested", "", false},
		{"unknown", "", false},
	}
	for _, tc := range cases {
		status, ok := SubscriptionTransition(tc.eventType)
		if ok != tc.ok || status != tc.status {
			t.Errorf("SubscriptionTransition(%q) = (%q, %v), want (%q, %v)",
				tc.eventType, status, ok, tc.status, tc.ok)
		}
	}
}

func TestPlanValidUntil(t *testing.T) {
	from := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	if got := PlanValidUntil(from, 3); !got.Equal(from.AddDate(0, 3, 0)) {
		t.Errorf("3 months: got %v", got)
	}
	// non-positive durations fall back to one month
	if got := PlanValidUntil(from, 0); !got.Equal(from.AddDate(0, 1, 0)) {
		t.Errorf("0 months: got %v", got)
	}
}

func TestDayStart(t *testing.T) {
	at := time.Date(2026, 8, 30, 23, 59, 59, 1e8, time.UTC)
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := DayStart(at); !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
	// two logs inside the same calendar day key the same row
	later := time.Date(2026, 8, 30, 6, 0, 0, 0, time.UTC)
	if !DayStart(at).Equal(DayStart(later)) {
		t.Error("same day must truncate to the same date")
	}
}
