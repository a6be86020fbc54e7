package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleSet mirrors the demonstration workload: (pid, arrival, burst,
// priority, niceness).
func sampleSet() []Process {
	return []Process{
		NewProcess(0, 0, 8, 3, 0),
		NewProcess(1, 1, 4, 1, -5),
		NewProcess(2, 2, 9, 4, 5),
		NewProcess(3, 3, 5, 2, 0),
		NewProcess(4, 4, 2, 5, -10),
		NewProcess(5, 6, 6, 3, 0),
	}
}

// gapSet forces idle stretches between bursts.
func gapSet() []Process {
	return []Process{
		NewProcess(0, 0, 3, 2, 0),
		NewProcess(1, 10, 4, 1, 2),
		NewProcess(2, 11, 2, 3, -2),
		NewProcess(3, 30, 5, 2, 0),
	}
}

func allSchedulers() []Scheduler {
	return []Scheduler{
		FCFS{},
		SJF{},
		SJF{Preemptive: true},
		PriorityScheduler{},
		PriorityScheduler{Preemptive: true},
		RoundRobin{Quantum: 4},
		HeuristicCFS{Quantum: 4},
	}
}

func checkResultInvariants(t *testing.T, templates []Process, result SchedulerResult) {
	t.Helper()

	// Trace entries are sorted, non-empty and pairwise non-overlapping.
	executed := map[int]int{}
	for i, entry := range result.Gantt {
		assert.Less(t, entry.Start, entry.End, "entry %d must have positive length", i)
		if i > 0 {
			assert.GreaterOrEqual(t, entry.Start, result.Gantt[i-1].End,
				"entry %d overlaps or is out of order", i)
		}
		executed[entry.PID] += entry.End - entry.Start
	}

	maxFinish := 0
	for i := range result.Processes {
		p := &result.Processes[i]
		assert.Equal(t, p.BurstTime, executed[p.PID], "pid %d executed time must equal burst", p.PID)
		assert.Zero(t, p.RemainingTime)
		assert.Equal(t, p.FinishTime-p.ArrivalTime, p.TurnaroundTime)
		assert.Equal(t, p.TurnaroundTime-p.BurstTime, p.WaitingTime)
		assert.GreaterOrEqual(t, p.ResponseTime, 0)
		assert.GreaterOrEqual(t, p.StartTime, p.ArrivalTime)
		if p.FinishTime > maxFinish {
			maxFinish = p.FinishTime
		}
	}
	assert.Equal(t, maxFinish, result.TotalTime, "total time must equal the last finish")

	// Termination bound: no later than every burst run back to back
	// after the last arrival.
	totalBurst, lastArrival := 0, 0
	for _, p := range templates {
		totalBurst += p.BurstTime
		if p.ArrivalTime > lastArrival {
			lastArrival = p.ArrivalTime
		}
	}
	assert.LessOrEqual(t, result.TotalTime, lastArrival+totalBurst)
}

func TestInvariantsAcrossSchedulers(t *testing.T) {
	inputs := map[string][]Process{
		"sample": sampleSet(),
		"gaps":   gapSet(),
		"single": {NewProcess(0, 5, 7, 1, 3)},
	}
	for inputName, templates := range inputs {
		for _, s := range allSchedulers() {
			t.Run(inputName+"/"+s.Name(), func(t *testing.T) {
				result, err := s.Schedule(templates)
				require.NoError(t, err)
				checkResultInvariants(t, templates, result)
			})
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, s := range allSchedulers() {
		t.Run(s.Name(), func(t *testing.T) {
			first, err := s.Schedule(sampleSet())
			require.NoError(t, err)
			second, err := s.Schedule(sampleSet())
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}

func TestScheduleDoesNotMutateInput(t *testing.T) {
	templates := sampleSet()
	want := sampleSet()
	for _, s := range allSchedulers() {
		_, err := s.Schedule(templates)
		require.NoError(t, err)
		require.Equal(t, want, templates, "%s mutated its input", s.Name())
	}
}

func TestEmptyProcessSet(t *testing.T) {
	for _, s := range allSchedulers() {
		t.Run(s.Name(), func(t *testing.T) {
			result, err := s.Schedule(nil)
			require.NoError(t, err)
			assert.Zero(t, result.TotalTime)
			assert.Zero(t, result.AvgWaitingTime)
			assert.Zero(t, result.AvgTurnaroundTime)
			assert.Zero(t, result.AvgResponseTime)
			assert.Zero(t, result.Throughput)
			assert.Zero(t, result.CPUUtilization)
			assert.Empty(t, result.Gantt)
		})
	}
}

func TestInvalidSpecRejected(t *testing.T) {
	bad := []Process{NewProcess(1, 0, 5, 0, 0), NewProcess(1, 1, 3, 0, 0)}
	for _, s := range allSchedulers() {
		_, err := s.Schedule(bad)
		require.ErrorIs(t, err, ErrInvalidProcessSpec, s.Name())
	}
}

func TestRunAllOrderAndNames(t *testing.T) {
	results, err := RunAll(sampleSet(), 4, 4)
	require.NoError(t, err)
	require.Len(t, results, 6)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Equal(t, []string{
		"FCFS (First Come First Serve)",
		"SJF (Shortest Job First)",
		"SRTF (Shortest Remaining Time First)",
		"Priority (Non-Preemptive)",
		"Round Robin (TQ=4)",
		"Heuristic AI CFS",
	}, names)
}
