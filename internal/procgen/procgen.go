// Package procgen builds random process sets for simulation runs. The
// generator is seeded, so any load level can be reproduced exactly.
package procgen

import (
	"golang.org/x/exp/rand"

	"github.com/pramath6095/heuristic-ai-cfs/internal/sched"
)

const (
	minPriority = 1
	maxPriority = 5
	minNiceness = -10
	maxNiceness = 10
)

// Generate returns n processes with pids 0..n-1, arrivals in
// [0, maxArrival] and bursts in [1, maxBurst].
func Generate(n, maxArrival, maxBurst int, seed uint64) []sched.Process {
	rng := rand.New(rand.NewSource(seed))
	procs := make([]sched.Process, 0, n)
	for i := 0; i < n; i++ {
		procs = append(procs, sched.NewProcess(
			i,
			rng.Intn(maxArrival+1),
			1+rng.Intn(maxBurst),
			minPriority+rng.Intn(maxPriority-minPriority+1),
			minNiceness+rng.Intn(maxNiceness-minNiceness+1),
		))
	}
	return procs
}

// Sample is the fixed six-process workload used for demonstration runs.
func Sample() []sched.Process {
	return []sched.Process{
		sched.NewProcess(0, 0, 8, 3, 0),
		sched.NewProcess(1, 1, 4, 1, -5),
		sched.NewProcess(2, 2, 9, 4, 5),
		sched.NewProcess(3, 3, 5, 2, 0),
		sched.NewProcess(4, 4, 2, 5, -10),
		sched.NewProcess(5, 6, 6, 3, 0),
	}
}
