// Package analysis runs every scheduling policy across growing process
// counts and collects the metric series per algorithm.
package analysis

import (
	"github.com/pramath6095/heuristic-ai-cfs/internal/procgen"
	"github.com/pramath6095/heuristic-ai-cfs/internal/sched"
)

const sweepMaxBurst = 20

// Series holds one algorithm's results, one entry per load level in
// sweep order.
type Series struct {
	Algorithm string
	Results   []sched.SchedulerResult
}

// DefaultLevels is the standard load progression.
func DefaultLevels() []int { return []int{5, 10, 15, 20, 25, 30} }

// Sweep generates a fresh seeded process set per load level, runs the
// full algorithm lineup against it, and returns one series per
// algorithm. Arrival spread scales with the level so contention stays
// comparable.
func Sweep(levels []int, rrQuantum, cfsQuantum int, seed uint64) ([]Series, error) {
	var series []Series
	for _, load := range levels {
		templates := procgen.Generate(load, load*2, sweepMaxBurst, seed+uint64(load))
		results, err := sched.RunAll(templates, rrQuantum, cfsQuantum)
		if err != nil {
			return nil, err
		}
		if series == nil {
			series = make([]Series, len(results))
			for i, r := range results {
				series[i].Algorithm = r.Name
			}
		}
		for i, r := range results {
			series[i].Results = append(series[i].Results, r)
		}
	}
	return series, nil
}
