package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/metis/internal/repository"
	"github.com/alexanderramin/metis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryFixture(t *testing.T) (HistoryService, repository.AssessmentRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteAssessmentRepo(database)
	return NewHistoryService(repo), repo
}

func TestHistoryService_ListAndGet(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	rec := testutil.NewAssessmentRecord()
	require.NoError(t, repo.Create(ctx, rec))

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestHistoryService_LatestPicksNewest(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	older := testutil.NewAssessmentRecord(
		testutil.WithCompletedAt(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
	)
	newer := testutil.NewAssessmentRecord(
		testutil.WithCompletedAt(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)),
	)
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, latest.ID)
}

func TestHistoryService_LatestEmptyHistory(t *testing.T) {
	svc, _ := newHistoryFixture(t)

	_, err := svc.Latest(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHistoryService_Delete(t *testing.T) {
	svc, repo := newHistoryFixture(t)
	ctx := context.Background()

	rec := testutil.NewAssessmentRecord()
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, svc.Delete(ctx, rec.ID))

	_, err := svc.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
