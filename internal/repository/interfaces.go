package repository

import (
	"context"

	"github.com/alexanderramin/metis/internal/domain"
)

// SnapshotRepo persists the single in-flight session snapshot, enabling an
// interrupted assessment to resume after restart.
type SnapshotRepo interface {
	Get(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
	Clear(ctx context.Context) error
}

// AssessmentRepo stores completed assessments as immutable history records.
type AssessmentRepo interface {
	Create(ctx context.Context, rec *domain.AssessmentRecord) error
	GetByID(ctx context.Context, id string) (*domain.AssessmentRecord, error)
	List(ctx context.Context) ([]*domain.AssessmentRecord, error)
	Delete(ctx context.Context, id string) error
}
