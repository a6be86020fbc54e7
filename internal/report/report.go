// Package report renders simulation results as text: a Gantt strip plus
// a schedule table per run, and comparison tables across runs.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/pramath6095/heuristic-ai-cfs/internal/sched"
)

// Result writes the full report for one scheduler run.
func Result(w io.Writer, result sched.SchedulerResult) {
	writeTitle(w, result.Name)
	writeGantt(w, result.Gantt)
	writeSchedule(w, result)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, gantt []sched.GanttEntry) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		width := (8 - len(pid)) / 2
		if width < 0 {
			width = 0
		}
		padding := strings.Repeat(" ", width)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func writeSchedule(w io.Writer, result sched.SchedulerResult) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Nice", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	for i := range result.Processes {
		p := &result.Processes[i]
		table.Append([]string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.Niceness),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.FinishTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AvgTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", result.AvgResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.Throughput)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

// Comparison writes a side-by-side metrics table for a set of runs and
// names the best algorithm per metric.
func Comparison(w io.Writer, results []sched.SchedulerResult) {
	if len(results) == 0 {
		return
	}
	writeTitle(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg TAT", "Avg Resp", "CPU Util", "Throughput"})
	for _, r := range results {
		table.Append([]string{
			ShortName(r.Name),
			fmt.Sprintf("%.2f", r.AvgWaitingTime),
			fmt.Sprintf("%.2f", r.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", r.AvgResponseTime),
			fmt.Sprintf("%.1f%%", r.CPUUtilization),
			fmt.Sprintf("%.4f", r.Throughput),
		})
	}
	table.Render()

	bestWait, bestTurnaround, bestResponse, bestUtil := results[0], results[0], results[0], results[0]
	for _, r := range results[1:] {
		if r.AvgWaitingTime < bestWait.AvgWaitingTime {
			bestWait = r
		}
		if r.AvgTurnaroundTime < bestTurnaround.AvgTurnaroundTime {
			bestTurnaround = r
		}
		if r.AvgResponseTime < bestResponse.AvgResponseTime {
			bestResponse = r
		}
		if r.CPUUtilization > bestUtil.CPUUtilization {
			bestUtil = r
		}
	}
	_, _ = fmt.Fprintf(w, "Best average waiting time:    %s (%.2f)\n", ShortName(bestWait.Name), bestWait.AvgWaitingTime)
	_, _ = fmt.Fprintf(w, "Best average turnaround time: %s (%.2f)\n", ShortName(bestTurnaround.Name), bestTurnaround.AvgTurnaroundTime)
	_, _ = fmt.Fprintf(w, "Best average response time:   %s (%.2f)\n", ShortName(bestResponse.Name), bestResponse.AvgResponseTime)
	_, _ = fmt.Fprintf(w, "Best CPU utilization:         %s (%.1f%%)\n", ShortName(bestUtil.Name), bestUtil.CPUUtilization)
}

// ShortName trims the parenthesized qualifier from an algorithm name.
func ShortName(name string) string {
	if i := strings.Index(name, " ("); i >= 0 {
		return name[:i]
	}
	return name
}
