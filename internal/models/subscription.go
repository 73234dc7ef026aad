package models

import "time"

// Subscription lifecycle states derived from billing provider events.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
)

// SubscriptionModel is one row per owner, converged by upsert on OwnerID.
// RawPayload keeps the full provider event verbatim for audit and replay.
type SubscriptionModel struct {
	Base
	OwnerID      string                 `json:"owner_id"      gorm:"uniqueIndex;not null"`
	ProductID    string                 `json:"product_id"`
	Status       string                 `json:"status"        gorm:"default:'active'"`
	PurchaseDate time.Time              `json:"purchase_date"`
	ExpiresAt    *time.Time             `json:"expires_at"`
	RawPayload   map[string]interface{} `json:"raw_payload"   gorm:"serializer:json"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }
