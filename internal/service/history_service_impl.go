package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/repository"
)

type historyService struct {
	assessments repository.AssessmentRepo
}

// NewHistoryService creates a HistoryService over the assessment history.
func NewHistoryService(assessments repository.AssessmentRepo) HistoryService {
	return &historyService{assessments: assessments}
}

func (s *historyService) List(ctx context.Context) ([]*domain.AssessmentRecord, error) {
	return s.assessments.List(ctx)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.AssessmentRecord, error) {
	return s.assessments.GetByID(ctx, id)
}

func (s *historyService) Latest(ctx context.Context) (*domain.AssessmentRecord, error) {
	records, err := s.assessments.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no completed assessments: %w", repository.ErrNotFound)
	}
	return records[0], nil
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.assessments.Delete(ctx, id)
}
