package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinMidQuantumArrivalQueuesAhead(t *testing.T) {
	// P1 arrives while P0 is in its first quantum, P2 while P1 runs.
	// Arrivals must be queued before the preempted process re-enters.
	result, err := RoundRobin{Quantum: 4}.Schedule([]Process{
		NewProcess(0, 0, 8, 0, 0),
		NewProcess(1, 3, 4, 0, 0),
		NewProcess(2, 5, 3, 0, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, []GanttEntry{
		{PID: 0, Start: 0, End: 4},
		{PID: 1, Start: 4, End: 8},
		{PID: 0, Start: 8, End: 12},
		{PID: 2, Start: 12, End: 15},
	}, result.Gantt)

	byPID := processesByPID(result)
	assert.Equal(t, 0, byPID[0].ResponseTime)
	assert.Equal(t, 1, byPID[1].ResponseTime)
	assert.Equal(t, 7, byPID[2].ResponseTime)
}

func TestRoundRobinIdleJump(t *testing.T) {
	result, err := RoundRobin{Quantum: 4}.Schedule([]Process{
		NewProcess(0, 0, 2, 0, 0),
		NewProcess(1, 10, 3, 0, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, []GanttEntry{
		{PID: 0, Start: 0, End: 2},
		{PID: 1, Start: 10, End: 13},
	}, result.Gantt)
	assert.Equal(t, 13, result.TotalTime)
	assert.Equal(t, 0, processesByPID(result)[1].ResponseTime)
}

func TestRoundRobinSliceNeverExceedsQuantum(t *testing.T) {
	result, err := RoundRobin{Quantum: 3}.Schedule(sampleSet())
	require.NoError(t, err)
	for _, entry := range result.Gantt {
		assert.LessOrEqual(t, entry.End-entry.Start, 3)
	}
}

func TestRoundRobinDefaultQuantum(t *testing.T) {
	assert.Equal(t, "Round Robin (TQ=4)", RoundRobin{}.Name())

	result, err := RoundRobin{}.Schedule([]Process{NewProcess(0, 0, 10, 0, 0)})
	require.NoError(t, err)
	// 10 units under the default quantum of 4: slices of 4, 4, 2.
	assert.Equal(t, []GanttEntry{
		{PID: 0, Start: 0, End: 4},
		{PID: 0, Start: 4, End: 8},
		{PID: 0, Start: 8, End: 10},
	}, result.Gantt)
}
