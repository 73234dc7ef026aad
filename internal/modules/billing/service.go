package billing

import (
	"context"
	"time"

	"github.com/pawtrack/core/internal/models"
	"github.com/pawtrack/core/internal/pkg/apperr"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubscriptionStore upserts subscription rows keyed by owner.
type SubscriptionStore interface {
	Upsert(ctx context.Context, sub *models.SubscriptionModel) error
}

// Service maps provider events onto subscription rows.
type Service struct {
	store  SubscriptionStore
	logger *zap.Logger
}

func NewService(store SubscriptionStore, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// StatusForEvent derives the subscription status from a provider event type.
// The mapping is total: unknown types mean the subscription stays active.
func StatusForEvent(eventType string) string {
	switch eventType {
	case EventCancellation:
		return models.SubscriptionCancelled
	case EventExpiration:
		return models.SubscriptionExpired
	default:
		return models.SubscriptionActive
	}
}

// HandleEvent upserts the subscription row for the event's owner. Repeated
// delivery of the same event converges to the same row state.
func (s *Service) HandleEvent(ctx context.Context, payload *WebhookPayload, raw map[string]interface{}) error {
	sub := &models.SubscriptionModel{
		OwnerID:      payload.AppUserID,
		ProductID:    payload.ProductID,
		Status:       StatusForEvent(payload.Event.Type),
		PurchaseDate: time.UnixMilli(payload.PurchasedAtMs).UTC(),
		RawPayload:   raw,
	}
	if payload.ExpirationAtMs != nil {
		expires := time.UnixMilli(*payload.ExpirationAtMs).UTC()
		sub.ExpiresAt = &expires
	}

	if err := s.store.Upsert(ctx, sub); err != nil {
		s.logger.Error("subscription upsert failed",
			zap.String("owner_id", payload.AppUserID),
			zap.String("event_type", payload.Event.Type),
			zap.Error(err),
		)
		return apperr.Upstream(err)
	}
	return nil
}

// gormStore is the production SubscriptionStore.
type gormStore struct{ db *gorm.DB }

// NewStore builds a SubscriptionStore backed by gorm.
func NewStore(db *gorm.DB) SubscriptionStore { return &gormStore{db: db} }

func (s *gormStore) Upsert(ctx context.Context, sub *models.SubscriptionModel) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"product_id", "status", "purchase_date", "expires_at", "raw_payload", "updated_at",
		}),
	}).Create(sub).Error
}
