package testutil

import (
	"time"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/google/uuid"
)

// RecordOption mutates a fixture assessment record.
type RecordOption func(*domain.AssessmentRecord)

func WithRecordID(id string) RecordOption {
	return func(r *domain.AssessmentRecord) {
		r.ID = id
	}
}

func WithProfile(p domain.OrganizationProfile) RecordOption {
	return func(r *domain.AssessmentRecord) {
		r.Profile = p
	}
}

func WithTotalScore(score int, level domain.MaturityLevel) RecordOption {
	return func(r *domain.AssessmentRecord) {
		r.Result.TotalScore = score
		r.Result.MaturityLevel = level
	}
}

func WithCompletedAt(t time.Time) RecordOption {
	return func(r *domain.AssessmentRecord) {
		r.CompletedAt = t
	}
}

// NewAssessmentRecord builds a plausible completed record for repository and
// service tests.
func NewAssessmentRecord(opts ...RecordOption) *domain.AssessmentRecord {
	rec := &domain.AssessmentRecord{
		ID: uuid.NewString(),
		Profile: domain.OrganizationProfile{
			Industry:    domain.IndustryTechnology,
			CompanySize: domain.SizeMedium,
		},
		Answers: map[string]int{
			"data-storage":        3,
			"strategic-alignment": 2,
		},
		Result: domain.AssessmentResult{
			TotalScore:    62,
			MaturityLevel: domain.MaturityDefined,
			DomainScores: map[domain.ReadinessDomain]domain.DomainScore{
				domain.DomainDataInfrastructure: {
					Score:           62,
					MaxScore:        100,
					MaturityLevel:   domain.MaturityDefined,
					Recommendations: []string{"Implement data quality monitoring"},
					Domain:          domain.DomainDataInfrastructure,
				},
			},
		},
		CompletedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(rec)
	}
	return rec
}
