package receipt

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pawtrack/core/internal/pkg/apperr"
	"github.com/pawtrack/core/internal/pkg/llm"
	"go.uber.org/zap"
)

const (
	extractionTemperature = 0.1
	extractionMaxTokens   = 300
)

// AttachmentStore persists extraction results onto attachment rows.
type AttachmentStore interface {
	UpdateExtractedText(ctx context.Context, attachmentID, text string) error
}

// Service turns OCR text into structured receipt fields via the LLM.
type Service struct {
	llm    llm.Client
	store  AttachmentStore // nil when no database is configured
	logger *zap.Logger
}

func NewService(client llm.Client, store AttachmentStore, logger *zap.Logger) *Service {
	return &Service{llm: client, store: store, logger: logger}
}

// Extract runs one completion over the OCR text and optionally persists the
// serialized result. The returned bool reports whether persistence happened;
// a failed write is logged and reported as false, never as an error, because
// the extraction itself already succeeded.
func (s *Service) Extract(ctx context.Context, req *ExtractionRequest) (*ExtractionResult, bool, error) {
	if strings.TrimSpace(req.ExtractedText) == "" {
		return nil, false, apperr.Validationf("Missing extracted_text")
	}

	raw, err := s.llm.Complete(ctx, llm.Request{
		System:      extractionSystemPrompt,
		User:        req.ExtractedText,
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
	})
	if err != nil {
		return nil, false, apperr.Upstream(err)
	}

	var result ExtractionResult
	if err := llm.Unmarshal(raw, &result); err != nil {
		return nil, false, apperr.Upstream(err)
	}
	if err := validateResult(&result); err != nil {
		return nil, false, err
	}

	persisted := false
	if req.AttachmentID != "" && s.store != nil {
		serialized, _ := json.Marshal(&result)
		if err := s.store.UpdateExtractedText(ctx, req.AttachmentID, string(serialized)); err != nil {
			s.logger.Error("attachment update failed",
				zap.String("attachment_id", req.AttachmentID),
				zap.Error(err),
			)
		} else {
			persisted = true
		}
	}

	return &result, persisted, nil
}

// validateResult enforces the documented shape on the parsed model output.
func validateResult(r *ExtractionResult) error {
	if r.Confidence < 0 || r.Confidence > 1 {
		return apperr.Schemaf("confidence %v is outside [0,1]", r.Confidence)
	}
	if r.Medications == nil {
		r.Medications = []string{}
	}
	if r.Procedures == nil {
		r.Procedures = []string{}
	}
	return nil
}
