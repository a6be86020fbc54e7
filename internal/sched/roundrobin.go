package sched

import (
	"fmt"
	"sort"
)

// RoundRobin cycles a FIFO ready queue, giving each process at most one
// quantum per dispatch. Processes that arrive during a slice are queued
// ahead of the preempted process being re-queued.
type RoundRobin struct {
	Quantum int // <= 0 means DefaultQuantum
}

func (r RoundRobin) quantum() int {
	if r.Quantum <= 0 {
		return DefaultQuantum
	}
	return r.Quantum
}

func (r RoundRobin) Name() string {
	return fmt.Sprintf("Round Robin (TQ=%d)", r.quantum())
}

func (r RoundRobin) Schedule(processes []Process) (SchedulerResult, error) {
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

	var (
		quantum   = r.quantum()
		now       int
		completed int
		next      int // index of the first not-yet-queued process
		queue     = make([]*Process, 0, len(procs))
		gantt     = make([]GanttEntry, 0, len(procs))
	)
	admit := func() {
		for next < len(procs) && procs[next].ArrivalTime <= now {
			queue = append(queue, &procs[next])
			next++
		}
	}
	admit()

	for completed < len(procs) {
		if len(queue) == 0 {
			if next >= len(procs) {
				panic("sched: round robin ready queue drained with unfinished processes")
			}
			now = procs[next].ArrivalTime
			admit()
			continue
		}

		current := queue[0]
		queue = queue[1:]
		if current.ResponseTime == -1 {
			current.ResponseTime = now - current.ArrivalTime
			current.StartTime = now
		}

		run := quantum
		if current.RemainingTime < run {
			run = current.RemainingTime
		}
		gantt = append(gantt, GanttEntry{PID: current.PID, Start: now, End: now + run})
		now += run
		current.RemainingTime -= run

		// Arrivals during the slice enter the queue before the preempted
		// process returns to the tail; that ordering is the fairness rule.
		admit()
		if current.RemainingTime > 0 {
			queue = append(queue, current)
		} else {
			current.completeAt(now)
			completed++
		}
	}

	return calculateMetrics(r.Name(), gantt, procs, now), nil
}
