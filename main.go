// Command cdcl-sat solves a DIMACS CNF instance and reports SAT/UNSAT.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/vellumsat/cdcl/internal/dimacs"
	"github.com/vellumsat/cdcl/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagSeed = flag.Int64(
	"seed",
	sat.DefaultOptions.Seed,
	"seed for the decision heuristic's polarity choice",
)

var flagPhaseSaving = flag.Bool(
	"phase-saving",
	sat.DefaultOptions.PhaseSaving,
	"reuse each variable's last assigned value as its next polarity",
)

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
	opts         sat.Options
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}

	opts := sat.DefaultOptions
	opts.Seed = *flagSeed
	opts.PhaseSaving = *flagPhaseSaving

	instanceFile := flag.Arg(0)
	return &config{
		instanceFile: instanceFile,
		gzipped:      strings.HasSuffix(instanceFile, ".gz"),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		opts:         opts,
	}, nil
}

func run(cfg *config) error {
	s := sat.NewSolver(cfg.opts)
	if err := dimacs.LoadDIMACS(cfg.instanceFile, cfg.gzipped, s); err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", s.VarCount())
	fmt.Printf("c clauses:    %d\n", s.ClauseCount())

	t := time.Now()
	status := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status)

	if status == sat.Sat {
		fmt.Print("v")
		for v, val := range s.Model() {
			if val == sat.False {
				fmt.Printf(" -%d", v+1)
			} else {
				fmt.Printf(" %d", v+1)
			}
		}
		fmt.Println(" 0")
	}

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
