package sched

import (
	"errors"
	"fmt"
)

var ErrInvalidProcessSpec = errors.New("invalid process spec")

// Process is the control block for one simulated process. The first five
// fields describe the workload; the rest are scheduling state owned by a
// single Schedule call.
type Process struct {
	PID         int
	ArrivalTime int
	BurstTime   int
	Priority    int // lower number = higher priority
	Niceness    int // -20..19, clamped into the weight table

	Weight         int
	RemainingTime  int
	StartTime      int // -1 until first dispatch
	FinishTime     int // -1 until completion
	WaitingTime    int
	TurnaroundTime int
	ResponseTime   int // -1 until first dispatch

	// Weighted-fair bookkeeping, untouched by the other schedulers.
	Vruntime      float64
	LastScheduled int
	AgingBoost    int
}

// nice0Weight is the weight of a niceness-0 process; all vruntime and
// time-slice math is normalized against it.
const nice0Weight = 1024

var niceWeights = [40]int{
	88761, 71755, 56483, 46273, 36291, 29154, 23254, 18705, 14949, 11916,
	9548, 7620, 6100, 4904, 3906, 3121, 2501, 1991, 1586, 1277,
	1024, 820, 655, 526, 423, 335, 272, 215, 172, 137,
	110, 87, 70, 56, 45, 36, 29, 23, 18, 15,
}

// NiceToWeight maps a niceness value to its scheduling weight. Values
// outside -20..19 clamp to the table edges.
func NiceToWeight(niceness int) int {
	idx := niceness + 20
	if idx < 0 {
		idx = 0
	} else if idx > 39 {
		idx = 39
	}
	return niceWeights[idx]
}

// NewProcess builds a process record with fresh runtime state.
func NewProcess(pid, arrival, burst, priority, niceness int) Process {
	return Process{
		PID:           pid,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		Priority:      priority,
		Niceness:      niceness,
		Weight:        NiceToWeight(niceness),
		RemainingTime: burst,
		StartTime:     -1,
		FinishTime:    -1,
		ResponseTime:  -1,
	}
}

func (p *Process) completeAt(now int) {
	p.FinishTime = now
	p.TurnaroundTime = p.FinishTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

func validate(processes []Process) error {
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.PID < 0 {
			return fmt.Errorf("%w: negative pid %d", ErrInvalidProcessSpec, p.PID)
		}
		if _, ok := seen[p.PID]; ok {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidProcessSpec, p.PID)
		}
		seen[p.PID] = struct{}{}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %d burst time must be positive, got %d", ErrInvalidProcessSpec, p.PID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d arrival time must be non-negative, got %d", ErrInvalidProcessSpec, p.PID, p.ArrivalTime)
		}
	}
	return nil
}

// prepare validates the templates and returns an exclusive clone with all
// runtime state reset, so repeated runs against the same templates never
// see each other's mutations.
func prepare(templates []Process) ([]Process, error) {
	if err := validate(templates); err != nil {
		return nil, err
	}
	procs := make([]Process, len(templates))
	for i, t := range templates {
		procs[i] = NewProcess(t.PID, t.ArrivalTime, t.BurstTime, t.Priority, t.Niceness)
	}
	return procs, nil
}
