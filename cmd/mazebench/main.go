// Command mazebench times every generator/solver combination over a matrix
// of maze sizes and repetitions, writing a CSV of measurements and a
// console summary.
//
// Example:
//
//	mazebench -sizes 15,25,51 -reps 2 -seed 123 -out maze_metrics.csv -v
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amazing-mazes/maze-api/bench"
	"github.com/amazing-mazes/maze-api/generator"
	"github.com/amazing-mazes/maze-api/logger"
	"github.com/amazing-mazes/maze-api/solver"
)

func main() {
	sizesFlag := flag.String("sizes", "", "comma-separated maze sizes to test (required), e.g. 15,25,51")
	reps := flag.Int("reps", 1, "repetitions per size")
	seed := flag.Int64("seed", 123, "base seed, shifted per run")
	generatorsFlag := flag.String("generators", "backtracking,kruskal", "generators to compare")
	solversFlag := flag.String("solvers", "backtracking,astar", "solvers to compare")
	out := flag.String("out", "maze_metrics.csv", "output CSV path")
	examplesDir := flag.String("examples-dir", "", "when set, write one solved ASCII example per combination")
	verbose := flag.Bool("v", false, "log each measurement as it completes")
	flag.Parse()

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebench: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	opts := bench.Options{
		Sizes:       sizes,
		Reps:        *reps,
		BaseSeed:    *seed,
		Generators:  parseGenerators(*generatorsFlag),
		Solvers:     parseSolvers(*solversFlag),
		ExamplesDir: *examplesDir,
	}
	if *verbose {
		benchLogger, lerr := logger.New("BENCH", logger.ColorMagenta, os.Stdout)
		if lerr != nil {
			fmt.Fprintf(os.Stderr, "mazebench: %v\n", lerr)
			os.Exit(1)
		}
		opts.Logger = benchLogger
	}

	records, err := bench.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebench: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebench: %v\n", err)
		os.Exit(1)
	}
	if err := bench.WriteCSV(f, records); err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "mazebench: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "mazebench: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d measurements to %s\n\n", len(records), *out)
	bench.WriteSummary(os.Stdout, records)
}

func parseSizes(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("-sizes is required")
	}
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid size %q", part)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func parseGenerators(s string) []generator.Algorithm {
	var algos []generator.Algorithm
	for _, part := range strings.Split(s, ",") {
		algos = append(algos, generator.Algorithm(strings.TrimSpace(part)))
	}
	return algos
}

func parseSolvers(s string) []solver.Algorithm {
	var algos []solver.Algorithm
	for _, part := range strings.Split(s, ",") {
		algos = append(algos, solver.Algorithm(strings.TrimSpace(part)))
	}
	return algos
}
