package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/pramath6095/heuristic-ai-cfs/api"
	"github.com/pramath6095/heuristic-ai-cfs/config"
	"github.com/pramath6095/heuristic-ai-cfs/internal/analysis"
	"github.com/pramath6095/heuristic-ai-cfs/internal/procgen"
	"github.com/pramath6095/heuristic-ai-cfs/internal/report"
	"github.com/pramath6095/heuristic-ai-cfs/internal/sched"
)

func main() {
	var (
		inputPath = flag.String("input", "", "CSV file of processes (pid,burst,arrival,priority[,niceness])")
		random    = flag.Int("random", 0, "generate this many random processes instead of the built-in sample")
		seed      = flag.Uint64("seed", 42, "seed for random process generation")
		serve     = flag.Bool("serve", false, "expose the scheduling API over HTTP")
		sweep     = flag.Bool("sweep", false, "run the load-level analysis instead of a single comparison")
	)
	flag.Parse()

	cfg := config.GetSchedulerConfig()

	if *serve {
		log.Fatal(api.Serve(cfg))
	}

	if *sweep {
		levels := cfg.SweepLevels
		series, err := analysis.Sweep(levels, cfg.RoundRobinQuantum, cfg.CFSQuantum, cfg.SweepSeed)
		if err != nil {
			log.Fatal(err)
		}
		report.Sweep(os.Stdout, levels, series)
		return
	}

	processes, err := resolveProcesses(*inputPath, *random, *seed)
	if err != nil {
		log.Fatal(err)
	}

	results, err := sched.RunAll(processes, cfg.RoundRobinQuantum, cfg.CFSQuantum)
	if err != nil {
		log.Fatal(err)
	}
	for _, result := range results {
		report.Result(os.Stdout, result)
	}
	report.Comparison(os.Stdout, results)
}

func resolveProcesses(inputPath string, random int, seed uint64) ([]sched.Process, error) {
	if inputPath != "" {
		f, closeFile, err := openProcessingFile(inputPath)
		if err != nil {
			return nil, err
		}
		defer closeFile()
		return loadProcesses(f)
	}
	if random > 0 {
		return procgen.Generate(random, random*2, 20, seed), nil
	}
	return procgen.Sample(), nil
}

func openProcessingFile(path string) (*os.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}

func loadProcesses(r io.Reader) ([]sched.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]sched.Process, 0, len(rows))
	for i := range rows {
		if len(rows[i]) < 4 {
			return nil, fmt.Errorf("row %d: expected at least 4 columns, got %d", i, len(rows[i]))
		}
		fields := make([]int, len(rows[i]))
		for j, cell := range rows[i] {
			fields[j], err = strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
		niceness := 0
		if len(fields) >= 5 {
			niceness = fields[4]
		}
		processes = append(processes, sched.NewProcess(fields[0], fields[2], fields[1], fields[3], niceness))
	}

	return processes, nil
}
