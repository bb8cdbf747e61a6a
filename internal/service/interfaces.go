package service

import (
	"context"

	"github.com/alexanderramin/metis/internal/domain"
)

// AssessmentService drives one assessment at a time and persists its state
// after every mutating call, so an interrupted run resumes where it left off.
type AssessmentService interface {
	// Resume loads a previously saved in-flight session. It reports whether
	// one existed; when none does the service starts empty.
	Resume(ctx context.Context) (bool, error)
	StartProfile(ctx context.Context, profile domain.OrganizationProfile) error
	Answer(ctx context.Context, questionID string, value int) error
	Advance(ctx context.Context) error
	Retreat(ctx context.Context) error
	Reset(ctx context.Context) error

	Profile() *domain.OrganizationProfile
	Current() *domain.Question
	ActiveQuestions() []domain.Question
	Index() int
	AnswerValue(questionID string) (int, bool)
	Progress() (answered, total int)
	IsComplete() bool
	Result() *domain.AssessmentResult
}

// HistoryService reads and prunes completed assessments.
type HistoryService interface {
	List(ctx context.Context) ([]*domain.AssessmentRecord, error)
	Get(ctx context.Context, id string) (*domain.AssessmentRecord, error)
	Latest(ctx context.Context) (*domain.AssessmentRecord, error)
	Delete(ctx context.Context, id string) error
}
