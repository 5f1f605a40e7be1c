package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jiawen-CS/02225-Distributed-Real-time-System-Group11/domain"
)

func testTasks() []*domain.Task {
	return []*domain.Task{
		{ID: 1, BCET: 1, WCET: 1, Period: 4, Deadline: 4},
		{ID: 2, BCET: 1, WCET: 2, Period: 6, Deadline: 6},
		{ID: 3, BCET: 2, WCET: 3, Period: 12, Deadline: 12},
	}
}

func TestUtilizationSum(t *testing.T) {
	svc := NewService()

	// 1/4 + 2/6 + 3/12 = 0.25 + 0.3333 + 0.25
	assert.InDelta(t, 0.8333333, svc.UtilizationSum(testTasks()), 1e-6)
	assert.Zero(t, svc.UtilizationSum(nil))
}

func TestLiuLaylandTest(t *testing.T) {
	svc := NewService()

	passed, u, bound := svc.LiuLaylandTest([]*domain.Task{
		{ID: 1, WCET: 1, Period: 4, Deadline: 4},
		{ID: 2, WCET: 1, Period: 8, Deadline: 8},
	})
	assert.True(t, passed)
	assert.InDelta(t, 0.375, u, 1e-9)
	// n=2: 2(sqrt(2)-1)
	assert.InDelta(t, 0.8284271, bound, 1e-6)

	// U above the bound: the test fails, which only means inconclusive.
	failed, _, _ := svc.LiuLaylandTest([]*domain.Task{
		{ID: 1, WCET: 3, Period: 6, Deadline: 6},
		{ID: 2, WCET: 4, Period: 9, Deadline: 9},
	})
	assert.False(t, failed)
}

func TestExactWCRTNoInterference(t *testing.T) {
	svc := NewService()
	task := &domain.Task{ID: 1, WCET: 5, Period: 20, Deadline: 20}

	assert.Equal(t, task.WCET, svc.ExactWCRT(task, nil))
}

func TestExactWCRTWithInterference(t *testing.T) {
	svc := NewService()
	tasks := testTasks()

	// Known fixed point for the lowest-priority task: 10.
	assert.Equal(t, 10, svc.ExactWCRT(tasks[2], tasks[:2]))
	// Middle task: R = 2 + ceil(R/4)*1 converges at 3.
	assert.Equal(t, 3, svc.ExactWCRT(tasks[1], tasks[:1]))
}

func TestExactWCRTDeadlineShortCircuit(t *testing.T) {
	svc := NewService()
	hp := &domain.Task{ID: 1, WCET: 3, Period: 4, Deadline: 4}
	task := &domain.Task{ID: 2, WCET: 3, Period: 5, Deadline: 5}

	// First refinement is 3 + 3 = 6 > deadline 5; returned immediately.
	assert.Equal(t, 6, svc.ExactWCRT(task, []*domain.Task{hp}))
}

func TestResponseTimeAnalysisRM(t *testing.T) {
	svc := NewService()
	tasks := testTasks()

	results, err := svc.ResponseTimeAnalysis(tasks, domain.RateMonotonic)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, domain.AnalysisResult{Period: 4, WCET: 1, WCRT: 1, Schedulable: true}, results[1])
	assert.Equal(t, domain.AnalysisResult{Period: 6, WCET: 2, WCRT: 3, Schedulable: true}, results[2])
	assert.Equal(t, domain.AnalysisResult{Period: 12, WCET: 3, WCRT: 10, Schedulable: true}, results[3])

	for id, res := range results {
		assert.GreaterOrEqual(t, res.WCRT, res.WCET, "task %d: WCRT below its own WCET", id)
	}
}

func TestResponseTimeAnalysisDMOrdersByDeadline(t *testing.T) {
	svc := NewService()
	tasks := []*domain.Task{
		{ID: 1, WCET: 2, Period: 10, Deadline: 4},
		{ID: 2, WCET: 2, Period: 8, Deadline: 8},
	}

	results, err := svc.ResponseTimeAnalysis(tasks, domain.DeadlineMonotonic)
	require.NoError(t, err)

	// Task 1 has the shorter deadline despite the longer period, so it is
	// analyzed without interference.
	assert.Equal(t, 2, results[1].WCRT)
	assert.Equal(t, 4, results[2].WCRT)
	assert.True(t, results[1].Schedulable)
	assert.True(t, results[2].Schedulable)

	for id, res := range results {
		assert.GreaterOrEqual(t, res.WCRT, res.WCET, "task %d: WCRT below its own WCET", id)
	}
}

func TestResponseTimeAnalysisRejectsEDF(t *testing.T) {
	svc := NewService()

	_, err := svc.ResponseTimeAnalysis(testTasks(), domain.EarliestDeadlineFirst)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownAlgorithm)
}

func TestResponseTimeAnalysisDoesNotMutateInput(t *testing.T) {
	svc := NewService()
	tasks := []*domain.Task{
		{ID: 2, WCET: 1, Period: 8, Deadline: 8, Priority: 42},
		{ID: 1, WCET: 1, Period: 4, Deadline: 4, Priority: 7},
	}

	_, err := svc.ResponseTimeAnalysis(tasks, domain.RateMonotonic)
	require.NoError(t, err)

	assert.Equal(t, 2, tasks[0].ID)
	assert.Equal(t, 42, tasks[0].Priority)
	assert.Equal(t, 7, tasks[1].Priority)
}
