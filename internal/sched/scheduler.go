package sched

type (
	// GanttEntry is one executed interval of the trace, start inclusive,
	// end exclusive. Gaps between entries are idle CPU.
	GanttEntry struct {
		PID   int
		Start int
		End   int
	}

	// SchedulerResult is the complete outcome of one simulation run.
	SchedulerResult struct {
		Name              string
		Gantt             []GanttEntry
		Processes         []Process
		AvgWaitingTime    float64
		AvgTurnaroundTime float64
		AvgResponseTime   float64
		Throughput        float64
		CPUUtilization    float64
		TotalTime         int
	}
)

// Scheduler runs one scheduling policy over a set of process templates.
// Schedule never mutates its input; it simulates against a private clone.
type Scheduler interface {
	Name() string
	Schedule(processes []Process) (SchedulerResult, error)
}

// DefaultQuantum is the time quantum used by RoundRobin and HeuristicCFS
// when none is configured.
const DefaultQuantum = 4

// All returns the standard comparison lineup, one scheduler per policy
// configuration.
func All(rrQuantum, cfsQuantum int) []Scheduler {
	return []Scheduler{
		FCFS{},
		SJF{},
		SJF{Preemptive: true},
		PriorityScheduler{},
		RoundRobin{Quantum: rrQuantum},
		HeuristicCFS{Quantum: cfsQuantum},
	}
}

// RunAll executes the full lineup against independent clones of the same
// templates and returns the results in lineup order.
func RunAll(templates []Process, rrQuantum, cfsQuantum int) ([]SchedulerResult, error) {
	schedulers := All(rrQuantum, cfsQuantum)
	results := make([]SchedulerResult, 0, len(schedulers))
	for _, s := range schedulers {
		res, err := s.Schedule(templates)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// availableAt returns the arrived, unfinished processes in input order.
// Selection functions depend on that order for their tie-breaks.
func availableAt(procs []Process, now int) []*Process {
	var available []*Process
	for i := range procs {
		if procs[i].ArrivalTime <= now && procs[i].RemainingTime > 0 {
			available = append(available, &procs[i])
		}
	}
	return available
}

// arrivalAfter returns the earliest arrival strictly after now among
// unfinished processes, reporting whether one exists.
func arrivalAfter(procs []Process, now int) (int, bool) {
	next, ok := 0, false
	for i := range procs {
		if procs[i].RemainingTime > 0 && procs[i].ArrivalTime > now {
			if !ok || procs[i].ArrivalTime < next {
				next = procs[i].ArrivalTime
				ok = true
			}
		}
	}
	return next, ok
}

// nextPendingArrival is the idle jump target: the earliest arrival among
// unfinished processes. Reaching idle with nothing pending means the
// decision loop is broken, so fail loudly instead of spinning.
func nextPendingArrival(procs []Process) int {
	next, ok := 0, false
	for i := range procs {
		if procs[i].RemainingTime > 0 {
			if !ok || procs[i].ArrivalTime < next {
				next = procs[i].ArrivalTime
				ok = true
			}
		}
	}
	if !ok {
		panic("sched: idle with unfinished processes but no pending arrival")
	}
	return next
}

// ganttTracker coalesces consecutive slices of the same process into a
// single trace entry. An entry is flushed only when the running pid
// changes or the runner completes.
type ganttTracker struct {
	lastPID   int // -1 when no interval is open
	lastStart int
}

func newGanttTracker() ganttTracker {
	return ganttTracker{lastPID: -1}
}

func (t *ganttTracker) observe(gantt []GanttEntry, pid, now int) []GanttEntry {
	if t.lastPID != pid {
		if t.lastPID != -1 && t.lastStart < now {
			gantt = append(gantt, GanttEntry{PID: t.lastPID, Start: t.lastStart, End: now})
		}
		t.lastPID = pid
		t.lastStart = now
	}
	return gantt
}

func (t *ganttTracker) flush(gantt []GanttEntry, now int) []GanttEntry {
	if t.lastPID != -1 && t.lastStart < now {
		gantt = append(gantt, GanttEntry{PID: t.lastPID, Start: t.lastStart, End: now})
	}
	t.lastPID = -1
	return gantt
}
