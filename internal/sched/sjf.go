package sched

// SJF picks the arrived process with the least remaining time. With
// Preemptive set it behaves as SRTF, re-evaluating the choice at every
// arrival.
type SJF struct {
	Preemptive bool
}

func (s SJF) Name() string {
	if s.Preemptive {
		return "SRTF (Shortest Remaining Time First)"
	}
	return "SJF (Shortest Job First)"
}

func (s SJF) Schedule(processes []Process) (SchedulerResult, error) {
	return runPreemptible(s.Name(), processes, s.Preemptive, pickShortestRemaining)
}

// pickShortestRemaining selects by (remaining, arrival, pid); the strict
// comparison keeps the earliest candidate on full ties.
func pickShortestRemaining(available []*Process) *Process {
	best := available[0]
	for _, p := range available[1:] {
		if p.RemainingTime < best.RemainingTime ||
			(p.RemainingTime == best.RemainingTime && p.ArrivalTime < best.ArrivalTime) ||
			(p.RemainingTime == best.RemainingTime && p.ArrivalTime == best.ArrivalTime && p.PID < best.PID) {
			best = p
		}
	}
	return best
}
