package sched

// PriorityScheduler picks the arrived process with the most urgent
// priority (lowest number). There is no aging: under continuous
// higher-priority arrivals a low-priority process starves, which is the
// documented behavior of the policy.
type PriorityScheduler struct {
	Preemptive bool
}

func (p PriorityScheduler) Name() string {
	if p.Preemptive {
		return "Priority (Preemptive)"
	}
	return "Priority (Non-Preemptive)"
}

func (p PriorityScheduler) Schedule(processes []Process) (SchedulerResult, error) {
	return runPreemptible(p.Name(), processes, p.Preemptive, pickHighestPriority)
}

// pickHighestPriority selects by (priority, arrival, pid).
func pickHighestPriority(available []*Process) *Process {
	best := available[0]
	for _, p := range available[1:] {
		if p.Priority < best.Priority ||
			(p.Priority == best.Priority && p.ArrivalTime < best.ArrivalTime) ||
			(p.Priority == best.Priority && p.ArrivalTime == best.ArrivalTime && p.PID < best.PID) {
			best = p
		}
	}
	return best
}
