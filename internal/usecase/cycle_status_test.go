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

func TestCycleStatus_Execute(t *testing.T) {
	repo := testutil.NewMockBoardRepository(testutil.SampleBoard())
	logger := &testutil.MockLogger{}
	uc := NewCycleStatus(repo, logger)

	out, err := uc.Execute(context.Background(), CycleStatusInput{TaskID: 3})

	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, domain.StatusPending, out.Previous)
	assert.Equal(t, domain.StatusInProgress, out.Task.Status)
	assert.Equal(t, domain.StatusInProgress, repo.Board.Tasks[2].Status)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "pending -> in-progress", logger.Entries[0].Msg)
}

func TestCycleStatus_Execute_ThreeTimesRestores(t *testing.T) {
	repo := testutil.NewMockBoardRepository(testutil.SampleBoard())
	uc := NewCycleStatus(repo, nil)

	for range 3 {
		_, err := uc.Execute(context.Background(), CycleStatusInput{TaskID: 1})
		require.NoError(t, err)
	}

	assert.Equal(t, testutil.SampleBoard().Tasks, repo.Board.Tasks)
}

func TestCycleStatus_Execute_UnknownID(t *testing.T) {
	repo := testutil.NewMockBoardRepository(testutil.SampleBoard())
	logger := &testutil.MockLogger{}
	uc := NewCycleStatus(repo, logger)

	out, err := uc.Execute(context.Background(), CycleStatusInput{TaskID: 99})

	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Equal(t, testutil.SampleBoard().Tasks, repo.Board.Tasks)
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "DEBUG", logger.Entries[0].Level)
}

func TestCycleStatus_Execute_LoadError(t *testing.T) {
	repo := testutil.NewMockBoardRepository(testutil.SampleBoard())
	repo.LoadErr = errors.New("boom")
	uc := NewCycleStatus(repo, nil)

	_, err := uc.Execute(context.Background(), CycleStatusInput{TaskID: 1})

	assert.ErrorContains(t, err, "boom")
}
