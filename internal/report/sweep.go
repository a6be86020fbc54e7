package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/pramath6095/heuristic-ai-cfs/internal/analysis"
	"github.com/pramath6095/heuristic-ai-cfs/internal/sched"
)

// Sweep writes one metric-versus-load table per tracked metric, with a
// column per algorithm.
func Sweep(w io.Writer, levels []int, series []analysis.Series) {
	if len(series) == 0 {
		return
	}
	writeTitle(w, "Performance vs load")
	metrics := []struct {
		name  string
		value func(sched.SchedulerResult) string
	}{
		{"Average waiting time", func(r sched.SchedulerResult) string { return fmt.Sprintf("%.2f", r.AvgWaitingTime) }},
		{"Average turnaround time", func(r sched.SchedulerResult) string { return fmt.Sprintf("%.2f", r.AvgTurnaroundTime) }},
		{"Average response time", func(r sched.SchedulerResult) string { return fmt.Sprintf("%.2f", r.AvgResponseTime) }},
		{"Throughput", func(r sched.SchedulerResult) string { return fmt.Sprintf("%.4f", r.Throughput) }},
	}

	header := []string{"Load"}
	for _, s := range series {
		header = append(header, ShortName(s.Algorithm))
	}

	for _, metric := range metrics {
		_, _ = fmt.Fprintln(w, metric.name)
		table := tablewriter.NewWriter(w)
		table.SetHeader(header)
		for li, load := range levels {
			row := []string{fmt.Sprint(load)}
			for _, s := range series {
				row = append(row, metric.value(s.Results[li]))
			}
			table.Append(row)
		}
		table.Render()
		_, _ = fmt.Fprintln(w)
	}
}
