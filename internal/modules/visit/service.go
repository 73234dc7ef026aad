package visit

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pawtrack/core/internal/pkg/apperr"
	"github.com/pawtrack/core/internal/pkg/llm"
	"go.uber.org/zap"
)

const (
	summaryTemperature = 0.3
	summaryMaxTokens   = 300
)

// Service asks the LLM for an owner-facing summary of one visit.
type Service struct {
	llm    llm.Client
	logger *zap.Logger
}

func NewService(client llm.Client, logger *zap.Logger) *Service {
	return &Service{llm: client, logger: logger}
}

// Summarize serializes pet and visit together as the user content and
// validates the model's answer against the documented result shape.
func (s *Service) Summarize(ctx context.Context, req *SummaryRequest) (*SummaryResult, error) {
	if req.Pet == nil || req.Visit == nil {
		return nil, apperr.Validationf("Missing pet or visit data")
	}

	userContent, err := json.Marshal(map[string]interface{}{
		"pet":   req.Pet,
		"visit": req.Visit,
	})
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	raw, err := s.llm.Complete(ctx, llm.Request{
		System:      summarySystemPrompt,
		User:        string(userContent),
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	var result SummaryResult
	if err := llm.Unmarshal(raw, &result); err != nil {
		return nil, apperr.Upstream(err)
	}
	if err := validateResult(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func validateResult(r *SummaryResult) error {
	if strings.TrimSpace(r.AISummary) == "" {
		return apperr.Schemaf("ai_summary is empty in AI response")
	}
	if _, ok := visitTypes[r.AITags.VisitType]; !ok {
		return apperr.Schemaf("visit_type %q is not a known value", r.AITags.VisitType)
	}
	if r.AITags.Medications == nil {
		r.AITags.Medications = []string{}
	}
	if r.AITags.NextSteps == nil {
		r.AITags.NextSteps = []string{}
	}
	return nil
}
