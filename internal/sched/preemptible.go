package sched

// runPreemptible is the decision loop shared by the SJF and priority
// families. pick chooses the next runner from the arrived, unfinished
// candidates (in input order). In preemptive mode the runner executes
// until the next unstarted arrival or completion, whichever is earlier;
// otherwise it runs its whole remaining burst.
func runPreemptible(name string, templates []Process, preemptive bool, pick func([]*Process) *Process) (SchedulerResult, error) {
	procs, err := prepare(templates)
	if err != nil {
		return SchedulerResult{}, err
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

		current := pick(available)
		if current.ResponseTime == -1 {
			current.ResponseTime = now - current.ArrivalTime
			current.StartTime = now
		}

		if preemptive {
			run := current.RemainingTime
			if next, ok := arrivalAfter(procs, now); ok && next-now < run {
				run = next - now
			}
			gantt = tracker.observe(gantt, current.PID, now)
			now += run
			current.RemainingTime -= run
			if current.RemainingTime == 0 {
				gantt = tracker.flush(gantt, now)
				current.completeAt(now)
				completed++
			}
		} else {
			gantt = append(gantt, GanttEntry{PID: current.PID, Start: now, End: now + current.RemainingTime})
			now += current.RemainingTime
			current.RemainingTime = 0
			current.completeAt(now)
			completed++
		}
	}

	return calculateMetrics(name, gantt, procs, now), nil
}
