package sched

// calculateMetrics folds a completed process set and its trace into a
// SchedulerResult. An empty set yields a defined zero result rather than
// NaN averages, so aggregation across many runs stays well-behaved.
func calculateMetrics(name string, gantt []GanttEntry, procs []Process, totalTime int) SchedulerResult {
	result := SchedulerResult{
		Name:      name,
		Gantt:     gantt,
		Processes: procs,
		TotalTime: totalTime,
	}
	if len(procs) == 0 {
		return result
	}

	var (
		totalWait       int
		totalTurnaround int
		totalResponse   int
		responded       int
		totalBurst      int
	)
	for i := range procs {
		totalWait += procs[i].WaitingTime
		totalTurnaround += procs[i].TurnaroundTime
		totalBurst += procs[i].BurstTime
		if procs[i].ResponseTime >= 0 {
			totalResponse += procs[i].ResponseTime
			responded++
		}
	}

	n := float64(len(procs))
	result.AvgWaitingTime = float64(totalWait) / n
	result.AvgTurnaroundTime = float64(totalTurnaround) / n
	if responded > 0 {
		result.AvgResponseTime = float64(totalResponse) / float64(responded)
	}
	if totalTime > 0 {
		result.Throughput = n / float64(totalTime)
		result.CPUUtilization = float64(totalBurst) / float64(totalTime) * 100
	}
	return result
}
