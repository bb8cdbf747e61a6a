package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/metis/internal/domain"
	"github.com/alexanderramin/metis/internal/repository"
	"github.com/alexanderramin/metis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	svc     AssessmentService
	history HistoryService
	snaps   repository.SnapshotRepo
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	snaps := repository.NewSQLiteSnapshotRepo(database)
	return serviceFixture{
		svc:     NewAssessmentService(snaps, testutil.NewTestUoW(database)),
		history: NewHistoryService(repository.NewSQLiteAssessmentRepo(database)),
		snaps:   snaps,
	}
}

// completeAssessment answers every active question with the given value
// (falling back to a valid option when needed) and advances to completion.
func completeAssessment(t *testing.T, svc AssessmentService, value int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		q := svc.Current()
		require.NotNil(t, q)
		v := value
		if q.OptionByValue(v) == nil {
			if v > 1 {
				v = 4
			} else {
				v = 1
			}
		}
		require.NoError(t, svc.Answer(ctx, q.ID, v))
		require.NoError(t, svc.Advance(ctx))
		if svc.IsComplete() {
			return
		}
	}
	t.Fatal("assessment did not complete")
}

func TestAssessmentService_HighReadinessRun(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryTechnology,
		CompanySize: domain.SizeEnterprise,
	}))
	completeAssessment(t, f.svc, 4)

	result := f.svc.Result()
	require.NotNil(t, result)
	assert.Equal(t, 100, result.TotalScore)
	assert.Equal(t, domain.MaturityOptimizing, result.MaturityLevel)

	// Completion wrote a history row.
	records, err := f.history.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 100, records[0].Result.TotalScore)
	assert.Equal(t, domain.IndustryTechnology, records[0].Profile.Industry)

	// And cleared the saved session.
	_, err = f.snaps.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssessmentService_HealthcareFollowUpRun(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryHealthcare,
		CompanySize: domain.SizeSmall,
	}))

	_, total := f.svc.Progress()
	assert.Equal(t, 8, total)

	require.NoError(t, f.svc.Answer(ctx, "data-storage", 3))

	ids := make(map[string]bool)
	for _, q := range f.svc.ActiveQuestions() {
		ids[q.ID] = true
	}
	assert.True(t, ids["healthcare-data-privacy"], "HIPAA follow-up should unlock")
}

func TestAssessmentService_LowReadinessRun(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryOther,
		CompanySize: domain.SizeSmall,
	}))
	completeAssessment(t, f.svc, 1)

	result := f.svc.Result()
	require.NotNil(t, result)
	assert.Equal(t, domain.MaturityInitial, result.MaturityLevel)
	assert.NotEmpty(t, result.Recommendations)
	for _, ds := range result.DomainScores {
		assert.NotEmpty(t, ds.Recommendations)
	}
}

func TestAssessmentService_ResumeRestoresInFlightSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	snaps := repository.NewSQLiteSnapshotRepo(database)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	first := NewAssessmentService(snaps, uow)
	require.NoError(t, first.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryFinance,
		CompanySize: domain.SizeLarge,
	}))
	require.NoError(t, first.Answer(ctx, "data-storage", 2))
	require.NoError(t, first.Advance(ctx))
	require.NoError(t, first.Answer(ctx, "strategic-alignment", 3))

	// A second service instance simulates a process restart.
	second := NewAssessmentService(snaps, uow)
	resumed, err := second.Resume(ctx)
	require.NoError(t, err)
	assert.True(t, resumed)

	require.NotNil(t, second.Profile())
	assert.Equal(t, domain.IndustryFinance, second.Profile().Industry)
	v, ok := second.AnswerValue("strategic-alignment")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	// The pointer lands on the first unanswered question.
	current := second.Current()
	require.NotNil(t, current)
	_, answered := second.AnswerValue(current.ID)
	assert.False(t, answered)
}

func TestAssessmentService_ResumeWithoutSavedSession(t *testing.T) {
	f := newServiceFixture(t)

	resumed, err := f.svc.Resume(context.Background())
	require.NoError(t, err)
	assert.False(t, resumed)
	assert.Nil(t, f.svc.Profile())
}

func TestAssessmentService_ResetClearsSavedSession(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryRetail,
		CompanySize: domain.SizeMedium,
	}))
	require.NoError(t, f.svc.Answer(ctx, "data-storage", 2))
	require.NoError(t, f.svc.Reset(ctx))

	assert.Nil(t, f.svc.Profile())
	assert.Nil(t, f.svc.Result())
	_, err := f.snaps.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// A fresh profile starts over cleanly.
	require.NoError(t, f.svc.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryRetail,
		CompanySize: domain.SizeMedium,
	}))
	answered, total := f.svc.Progress()
	assert.Equal(t, 0, answered)
	assert.Equal(t, 8, total)
}

func TestAssessmentService_CompletionRollsBackAtomically(t *testing.T) {
	database := testutil.NewTestDB(t)
	snaps := repository.NewSQLiteSnapshotRepo(database)
	assessments := repository.NewSQLiteAssessmentRepo(database)

	// Fail on the second write inside the completion transaction (the
	// snapshot DELETE), after the history INSERT succeeded.
	uow := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    fmt.Errorf("disk full"),
	}
	svc := NewAssessmentService(snaps, uow)
	ctx := context.Background()

	require.NoError(t, svc.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryTechnology,
		CompanySize: domain.SizeSmall,
	}))

	questions := svc.ActiveQuestions()
	for i, q := range questions {
		require.NoError(t, svc.Answer(ctx, q.ID, 4))
		if i < len(questions)-1 {
			require.NoError(t, svc.Advance(ctx))
		}
	}

	err := svc.Advance(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, uow.Err), "completion should surface the injected failure")

	// Neither write survived: no history row, snapshot still present.
	records, listErr := assessments.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, records)

	snap, getErr := snaps.Get(ctx)
	require.NoError(t, getErr)
	assert.NotNil(t, snap)
}

type captureUseCaseObserver struct {
	events []UseCaseEvent
}

func (c *captureUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	c.events = append(c.events, event)
}

func TestAssessmentService_CompletionEmitsObserverEvent(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &captureUseCaseObserver{}
	svc := NewAssessmentService(
		repository.NewSQLiteSnapshotRepo(database),
		testutil.NewTestUoW(database),
		obs,
	)
	ctx := context.Background()

	require.NoError(t, svc.StartProfile(ctx, domain.OrganizationProfile{
		Industry:    domain.IndustryTechnology,
		CompanySize: domain.SizeEnterprise,
	}))
	completeAssessment(t, svc, 4)

	require.Len(t, obs.events, 1)
	event := obs.events[0]
	assert.Equal(t, "complete-assessment", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, 100, event.Fields["total_score"])
}

func TestAssessmentService_StartProfileRejectsInvalid(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.StartProfile(context.Background(), domain.OrganizationProfile{
		Industry:    "space",
		CompanySize: domain.SizeSmall,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}
