package receipt

import (
	"context"

	"github.com/pawtrack/core/internal/models"
	"gorm.io/gorm"
)

// gormStore is the production AttachmentStore.
type gormStore struct{ db *gorm.DB }

// NewStore builds an AttachmentStore backed by gorm.
func NewStore(db *gorm.DB) AttachmentStore { return &gormStore{db: db} }

// UpdateExtractedText replaces only the extracted-text column of the
// matching attachment. A missing row is a silent no-op, matching upstream
// update-by-id semantics.
func (s *gormStore) UpdateExtractedText(ctx context.Context, attachmentID, text string) error {
	return s.db.WithContext(ctx).
		Model(&models.AttachmentModel{}).
		Where("id = ?", attachmentID).
		Update("extracted_text", text).Error
}
