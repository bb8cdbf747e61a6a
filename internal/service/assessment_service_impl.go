package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/metis/internal/db"
	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/repository"
	"github.com/alexanderramin/metis/internal/session"
	"github.com/google/uuid"
)

type assessmentService struct {
	sess      *session.Session
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

// NewAssessmentService creates an AssessmentService backed by the given
// snapshot repository and unit of work.
func NewAssessmentService(
	snapshots repository.SnapshotRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AssessmentService {
	return &assessmentService{
		sess:      session.New(),
		snapshots: snapshots,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *assessmentService) Resume(ctx context.Context) (bool, error) {
	snap, err := s.snapshots.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading saved session: %w", err)
	}

	restored, err := session.Restore(*snap)
	if err != nil {
		return false, fmt.Errorf("restoring saved session: %w", err)
	}
	s.sess = restored
	return true, nil
}

func (s *assessmentService) StartProfile(ctx context.Context, profile domain.OrganizationProfile) error {
	if err := s.sess.SetProfile(profile); err != nil {
		return err
	}
	return s.save(ctx)
}

func (s *assessmentService) Answer(ctx context.Context, questionID string, value int) error {
	if err := s.sess.Answer(questionID, value); err != nil {
		return err
	}
	return s.save(ctx)
}

func (s *assessmentService) Advance(ctx context.Context) (err error) {
	wasComplete := s.sess.IsComplete()
	s.sess.Advance()

	if s.sess.IsComplete() && !wasComplete {
		startedAt := time.Now().UTC()
		defer func() {
			s.observer.ObserveUseCase(ctx, UseCaseEvent{
				Name:      "complete-assessment",
				StartedAt: startedAt,
				Duration:  time.Since(startedAt),
				Success:   err == nil,
				Err:       err,
				Fields: map[string]any{
					"total_score": s.sess.Result().TotalScore,
				},
			})
		}()
		return s.finish(ctx)
	}
	return s.save(ctx)
}

func (s *assessmentService) Retreat(ctx context.Context) error {
	s.sess.Retreat()
	return s.save(ctx)
}

func (s *assessmentService) Reset(ctx context.Context) error {
	s.sess.Reset()
	if err := s.snapshots.Clear(ctx); err != nil {
		return fmt.Errorf("clearing saved session: %w", err)
	}
	return nil
}

func (s *assessmentService) Profile() *domain.OrganizationProfile { return s.sess.Profile() }
func (s *assessmentService) Current() *domain.Question            { return s.sess.Current() }
func (s *assessmentService) ActiveQuestions() []domain.Question   { return s.sess.ActiveQuestions() }
func (s *assessmentService) Index() int                           { return s.sess.Index() }
func (s *assessmentService) IsComplete() bool                     { return s.sess.IsComplete() }
func (s *assessmentService) Result() *domain.AssessmentResult     { return s.sess.Result() }

func (s *assessmentService) AnswerValue(questionID string) (int, bool) {
	return s.sess.AnswerValue(questionID)
}

func (s *assessmentService) Progress() (answered, total int) {
	return s.sess.Progress()
}

func (s *assessmentService) save(ctx context.Context) error {
	snap := s.sess.Snapshot()
	if err := s.snapshots.Save(ctx, &snap); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// finish records the completed assessment in history and clears the saved
// session in a single transaction, so a crash between the two writes cannot
// leave a completed session that re-fires on resume.
func (s *assessmentService) finish(ctx context.Context) error {
	profile := s.sess.Profile()
	result := s.sess.Result()
	rec := &domain.AssessmentRecord{
		ID:          uuid.New().String(),
		Profile:     *profile,
		Answers:     s.sess.Answers(),
		Result:      *result,
		CompletedAt: time.Now().UTC(),
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAssessments := repository.NewSQLiteAssessmentRepo(tx)
		txSnapshots := repository.NewSQLiteSnapshotRepo(tx)

		if err := txAssessments.Create(ctx, rec); err != nil {
			return err
		}
		return txSnapshots.Clear(ctx)
	})
}
