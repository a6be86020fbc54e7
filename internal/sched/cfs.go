package sched

import (
	"fmt"
	"math"
)

const (
	// maxWaitThreshold is the wait beyond which a candidate earns an
	// aging boost.
	maxWaitThreshold = 50
	// interactiveThreshold marks nearly-finished processes for a score
	// discount, favoring short interactive work.
	interactiveThreshold = 20
	// longTaskThreshold marks long remaining work for a small penalty.
	longTaskThreshold = 50
	maxAgingBoost     = 10
)

// HeuristicCFS is a weighted-fair scheduler: candidates are scored from
// their vruntime with aging and interactivity adjustments, the minimum
// score runs for a weight-derived slice, and vruntime advances inversely
// proportional to weight.
type HeuristicCFS struct {
	Quantum int // <= 0 means DefaultQuantum
}

func (h HeuristicCFS) quantum() int {
	if h.Quantum <= 0 {
		return DefaultQuantum
	}
	return h.Quantum
}

func (HeuristicCFS) Name() string { return "Heuristic AI CFS" }

func (h HeuristicCFS) Schedule(processes []Process) (SchedulerResult, error) {
	procs, err := prepare(processes)
	if err != nil {
		return SchedulerResult{}, err
	}

	// Every run starts from a zero fairness floor. Later arrivals also
	// keep vruntime 0 rather than joining at the tracked minimum; see
	// the note after the slice accounting below.
	minVruntime := 0.0
	for i := range procs {
		procs[i].Vruntime = minVruntime
		procs[i].LastScheduled = procs[i].ArrivalTime
	}

	var (
		now       int
		completed int
		gantt     = make([]GanttEntry, 0, len(procs))
		tracker   = newGanttTracker()
	)
	for completed < len(procs) {
		available := availableAt(procs, now)
		if len(available) == 0 {
			now = nextPendingArrival(procs)
			continue
		}

		current := selectNext(available, now)
		if current.ResponseTime == -1 {
			current.ResponseTime = now - current.ArrivalTime
			current.StartTime = now
		}

		// Weight-derived slice, clamped so even the heaviest-niced
		// process makes progress.
		slice := (h.quantum() * nice0Weight) / current.Weight
		if slice < 2 {
			slice = 2
		}
		run := slice
		if current.RemainingTime < run {
			run = current.RemainingTime
		}
		if next, ok := arrivalAfter(procs, now); ok && next-now < run {
			run = next - now
		}
		if run < 1 {
			run = 1
		}

		gantt = tracker.observe(gantt, current.PID, now)
		now += run
		current.RemainingTime -= run
		current.Vruntime += float64(run*nice0Weight) / float64(current.Weight)

		// Track the running minimum over unfinished processes. It is
		// deliberately never applied to newly arriving processes.
		minActive := math.Inf(1)
		for i := range procs {
			if procs[i].RemainingTime > 0 && procs[i].Vruntime < minActive {
				minActive = procs[i].Vruntime
			}
		}
		if !math.IsInf(minActive, 1) {
			minVruntime = minActive
		}

		if current.RemainingTime == 0 {
			gantt = tracker.flush(gantt, now)
			current.completeAt(now)
			completed++
		}
	}

	return calculateMetrics(h.Name(), gantt, procs, now), nil
}

// selectNext scores every candidate and keeps the strict minimum, so the
// first candidate attaining it wins ties. Scoring mutates AgingBoost and
// LastScheduled on every evaluated candidate, not only the winner; that
// look-ahead changes later selections and is part of the policy.
func selectNext(available []*Process, now int) *Process {
	var best *Process
	bestScore := math.Inf(1)
	for _, p := range available {
		wait := now - p.LastScheduled
		if wait > maxWaitThreshold {
			p.AgingBoost = (wait - maxWaitThreshold) / 5
			if p.AgingBoost > maxAgingBoost {
				p.AgingBoost = maxAgingBoost
			}
		} else {
			p.AgingBoost = 0
		}
		p.LastScheduled = now

		score := p.Vruntime - float64(p.AgingBoost*100)
		if p.RemainingTime < interactiveThreshold {
			score -= 50
		}
		if p.RemainingTime > longTaskThreshold {
			score += 10
		}
		if score < bestScore {
			bestScore = score
			best = p
		}
	}
	if best == nil {
		panic(fmt.Sprintf("sched: no candidate selected from %d available", len(available)))
	}
	return best
}
