package sched

import "sort"

// FCFS dispatches processes in arrival order, each running its full burst
// without preemption.
type FCFS struct{}

func (FCFS) Name() string { return "FCFS (First Come First Serve)" }

func (f FCFS) Schedule(processes []Process) (SchedulerResult, error) {
	procs, err := prepare(processes)
	if err != nil {
		return SchedulerResult{}, err
	}
	sort.Slice(procs, func(i, j int) bool {
		if procs[i].ArrivalTime != procs[j].ArrivalTime {
			return procs[i].ArrivalTime < procs[j].ArrivalTime
		}
		return procs[i].PID < procs[j].PID
	})

	now := 0
	gantt := make([]GanttEntry, 0, len(procs))
	for i := range procs {
		p := &procs[i]
		if now < p.ArrivalTime {
			// Idle until the next arrival; the gap gets no trace entry.
			now = p.ArrivalTime
		}
		p.StartTime = now
		p.ResponseTime = now - p.ArrivalTime

		gantt = append(gantt, GanttEntry{PID: p.PID, Start: now, End: now + p.BurstTime})
		now += p.BurstTime
		p.RemainingTime = 0
		p.completeAt(now)
	}

	return calculateMetrics(f.Name(), gantt, procs, now), nil
}
