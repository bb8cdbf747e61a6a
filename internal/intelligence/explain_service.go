package intelligence

import (
	"context"
	"encoding/json"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/llm"
)

// ExplainService turns completed assessments into plain-language narratives.
// Every method degrades to a deterministic narrative when the LLM is
// unavailable or produces ungrounded output, so callers never see an error
// from the LLM path.
type ExplainService interface {
	// Explain narrates the whole assessment result.
	Explain(ctx context.Context, rec domain.AssessmentRecord) (*ResultNarrative, error)

	// AdviseDomain narrates a single readiness domain in depth.
	AdviseDomain(ctx context.Context, rec domain.AssessmentRecord, target domain.ReadinessDomain) (*ResultNarrative, error)
}

type explainService struct {
	client llm.LLMClient
}

// NewExplainService creates an ExplainService backed by an LLM client. A nil
// client is allowed and yields deterministic narratives only.
func NewExplainService(client llm.LLMClient) ExplainService {
	return &explainService{client: client}
}

func (s *explainService) Explain(ctx context.Context, rec domain.AssessmentRecord) (*ResultNarrative, error) {
	if s.client == nil {
		return DeterministicExplain(rec), nil
	}

	recJSON, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return DeterministicExplain(rec), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExplain,
		SystemPrompt: explainSystemPrompt,
		UserPrompt:   "Here is the completed assessment:\n\n" + string(recJSON),
	})
	if err != nil {
		return DeterministicExplain(rec), nil
	}

	narrative, err := llm.ExtractJSON[ResultNarrative](resp.Text, nil)
	if err != nil {
		return DeterministicExplain(rec), nil
	}
	if valErr := ValidateNarrative(narrative, rec.Result); valErr != nil {
		return DeterministicExplain(rec), nil
	}
	return &narrative, nil
}

func (s *explainService) AdviseDomain(ctx context.Context, rec domain.AssessmentRecord, target domain.ReadinessDomain) (*ResultNarrative, error) {
	ds, ok := rec.Result.DomainScores[target]
	if !ok || s.client == nil {
		return DeterministicAdvise(rec, target), nil
	}

	prompt := struct {
		Domain domain.ReadinessDomain `json:"domain"`
		Score  domain.DomainScore     `json:"score"`
	}{
		Domain: target,
		Score:  ds,
	}
	promptJSON, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return DeterministicAdvise(rec, target), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvise,
		SystemPrompt: adviseSystemPrompt,
		UserPrompt:   string(promptJSON),
	})
	if err != nil {
		return DeterministicAdvise(rec, target), nil
	}

	narrative, err := llm.ExtractJSON[ResultNarrative](resp.Text, nil)
	if err != nil {
		return DeterministicAdvise(rec, target), nil
	}
	if valErr := ValidateNarrative(narrative, rec.Result); valErr != nil {
		return DeterministicAdvise(rec, target), nil
	}
	return &narrative, nil
}
