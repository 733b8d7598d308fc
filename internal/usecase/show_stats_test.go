package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/testutil"
)

func TestShowStats_Execute(t *testing.T) {
	uc := NewShowStats(testutil.NewMockBoardRepository(testutil.SampleBoard()))

	out, err := uc.Execute(context.Background(), ShowStatsInput{RecentTasks: 2})

	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{
		Total:          3,
		Pending:        1,
		InProgress:     1,
		Completed:      1,
		CompletionRate: 33,
	}, out.Stats)
	require.Len(t, out.Recent, 2)
	assert.Equal(t, 1, out.Recent[0].ID)
	assert.Equal(t, 2, out.Recent[1].ID)
}

func TestShowStats_Execute_EmptyBoard(t *testing.T) {
	uc := NewShowStats(testutil.NewMockBoardRepository(domain.Board{}))

	out, err := uc.Execute(context.Background(), ShowStatsInput{RecentTasks: 3})

	require.NoError(t, err)
	assert.Zero(t, out.Stats.Total)
	assert.Zero(t, out.Stats.CompletionRate)
	assert.Empty(t, out.Recent)
}

func TestShowStats_Execute_LoadError(t *testing.T) {
	repo := testutil.NewMockBoardRepository(domain.Board{})
	repo.LoadErr = errors.New("boom")

	_, err := NewShowStats(repo).Execute(context.Background(), ShowStatsInput{})

	assert.ErrorContains(t, err, "load board")
}
