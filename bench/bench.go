/*
Package bench compares the maze generators and solvers against each other.

A run crosses sizes x repetitions x generators x solvers, timing every
generation and solve and collecting grid metrics from the character counts
of the result. Each solver gets its own clone of the generated grid, so the
combinations never contaminate one another. Results go out as CSV rows and
a per-phase console summary.
*/
package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/amazing-mazes/maze-api/generator"
	"github.com/amazing-mazes/maze-api/infrastruture/store"
	"github.com/amazing-mazes/maze-api/maze"
	"github.com/amazing-mazes/maze-api/service/i"
	"github.com/amazing-mazes/maze-api/solver"
)

// Options configures a benchmark run.
type Options struct {
	Sizes       []int                 // maze sizes n to test
	Reps        int                   // repetitions per size, default 1
	BaseSeed    int64                 // base seed, shifted per run
	Generators  []generator.Algorithm // default: all
	Solvers     []solver.Algorithm    // default: all
	ExamplesDir string                // when set, the first solved grid of each combination is written there
	Logger      i.Logger              // when set, per-measurement progress is logged
}

// Record is one timed measurement: a generation or a solve.
type Record struct {
	Phase         string        // "generation" or "solving"
	Algorithm     string        // the measured algorithm
	GenAlgorithm  string        // for solves, the generator that produced the grid
	N             int           // maze size
	Seed          int64         // effective seed of the run
	OK            bool          // solve outcome; always true for generation
	WallTime      time.Duration // elapsed wall-clock time
	AllocBytes    uint64        // heap bytes allocated during the measurement
	ASCIIBytes    int           // size of the grid's text form
	Height        int
	Width         int
	PathCells     int // cells on the final path
	ExploredCells int // cells explored but not on the path
	EmptyCells    int // passable cells left untouched
	WallCells     int
}

// runSeed shifts the base seed per repetition and size, so runs vary while
// staying reproducible from the base.
func runSeed(base int64, rep, n int) int64 {
	return base + 10007*int64(rep) + 7919*int64(n)
}

// Run executes the full benchmark matrix and returns one record per
// measurement, in execution order.
func Run(opts Options) ([]Record, error) {
	if len(opts.Sizes) == 0 {
		return nil, errors.New("bench: at least one size is required")
	}
	if opts.Reps <= 0 {
		opts.Reps = 1
	}
	if len(opts.Generators) == 0 {
		opts.Generators = generator.Algorithms()
	}
	if len(opts.Solvers) == 0 {
		opts.Solvers = solver.Algorithms()
	}
	if opts.ExamplesDir != "" {
		if err := os.MkdirAll(opts.ExamplesDir, 0o755); err != nil {
			return nil, err
		}
	}

	var records []Record
	for _, n := range opts.Sizes {
		for rep := 0; rep < opts.Reps; rep++ {
			seed := runSeed(opts.BaseSeed, rep, n)

			for _, genAlgo := range opts.Generators {
				genRec, grid, err := measureGeneration(genAlgo, n, seed)
				if err != nil {
					return nil, err
				}
				records = append(records, genRec)
				if opts.Logger != nil {
					opts.Logger.Info(fmt.Sprintf("[GEN] n=%d rep=%d/%d algo=%s wall=%s alloc=%dB",
						n, rep+1, opts.Reps, genAlgo, genRec.WallTime, genRec.AllocBytes))
				}

				savedExample := false
				for _, solAlgo := range opts.Solvers {
					solRec, solved, err := measureSolving(solAlgo, genAlgo, grid, n, seed)
					if err != nil {
						return nil, err
					}
					records = append(records, solRec)
					if opts.Logger != nil {
						opts.Logger.Info(fmt.Sprintf("  [SOLVE] algo=%s ok=%t wall=%s path=%d explored=%d",
							solAlgo, solRec.OK, solRec.WallTime, solRec.PathCells, solRec.ExploredCells))
					}

					if opts.ExamplesDir != "" && rep == 0 && !savedExample {
						name := fmt.Sprintf("maze_n%d_%s_%s.txt", n, genAlgo, solAlgo)
						if err := store.WriteGrid(filepath.Join(opts.ExamplesDir, name), solved); err != nil {
							return nil, err
						}
						savedExample = true
					}
				}
			}
		}
	}
	return records, nil
}

func measureGeneration(algo generator.Algorithm, n int, seed int64) (Record, maze.Grid, error) {
	allocBefore := heapAlloc()
	start := time.Now()
	grid, err := generator.Generate(algo, n, seed)
	elapsed := time.Since(start)
	if err != nil {
		return Record{}, nil, err
	}

	counts := grid.Count()
	return Record{
		Phase:      "generation",
		Algorithm:  string(algo),
		N:          n,
		Seed:       seed,
		OK:         true,
		WallTime:   elapsed,
		AllocBytes: heapAlloc() - allocBefore,
		ASCIIBytes: len(grid.String()),
		Height:     grid.Height(),
		Width:      grid.Width(),
		EmptyCells: counts[maze.Empty],
		WallCells:  counts[maze.Wall],
	}, grid, nil
}

func measureSolving(algo solver.Algorithm, genAlgo generator.Algorithm, grid maze.Grid, n int, seed int64) (Record, maze.Grid, error) {
	clone := grid.Clone()

	allocBefore := heapAlloc()
	start := time.Now()
	ok, err := solver.Solve(algo, clone)
	elapsed := time.Since(start)
	if err != nil {
		return Record{}, nil, err
	}

	counts := clone.Count()
	return Record{
		Phase:         "solving",
		Algorithm:     string(algo),
		GenAlgorithm:  string(genAlgo),
		N:             n,
		Seed:          seed,
		OK:            ok,
		WallTime:      elapsed,
		AllocBytes:    heapAlloc() - allocBefore,
		ASCIIBytes:    len(clone.String()),
		Height:        clone.Height(),
		Width:         clone.Width(),
		PathCells:     counts[maze.Path],
		ExploredCells: counts[maze.Seen],
		EmptyCells:    counts[maze.Empty],
		WallCells:     counts[maze.Wall],
	}, clone, nil
}

// heapAlloc samples cumulative heap allocation. Deltas of a monotonically
// increasing counter stay meaningful across garbage collections, unlike
// live-heap snapshots.
func heapAlloc() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.TotalAlloc
}

// WriteCSV writes the records as CSV with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	header := []string{
		"phase", "algo", "gen_algo", "n", "seed", "ok",
		"wall_time_s", "alloc_bytes", "ascii_bytes", "height", "width",
		"path_len_cells", "explored_cells", "remaining_empty_cells", "wall_cells",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Phase,
			r.Algorithm,
			r.GenAlgorithm,
			strconv.Itoa(r.N),
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatBool(r.OK),
			strconv.FormatFloat(r.WallTime.Seconds(), 'f', 6, 64),
			strconv.FormatUint(r.AllocBytes, 10),
			strconv.Itoa(r.ASCIIBytes),
			strconv.Itoa(r.Height),
			strconv.Itoa(r.Width),
			strconv.Itoa(r.PathCells),
			strconv.Itoa(r.ExploredCells),
			strconv.Itoa(r.EmptyCells),
			strconv.Itoa(r.WallCells),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary prints the mean wall time per phase/algorithm/size.
func WriteSummary(w io.Writer, records []Record) {
	type key struct {
		phase string
		algo  string
		n     int
	}

	totals := make(map[key]time.Duration)
	counts := make(map[key]int)
	for _, r := range records {
		k := key{phase: r.Phase, algo: r.Algorithm, n: r.N}
		totals[k] += r.WallTime
		counts[k]++
	}

	keys := make([]key, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].phase != keys[b].phase {
			return keys[a].phase < keys[b].phase
		}
		if keys[a].algo != keys[b].algo {
			return keys[a].algo < keys[b].algo
		}
		return keys[a].n < keys[b].n
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PHASE\tALGORITHM\tN\tMEAN WALL TIME")
	for _, k := range keys {
		mean := totals[k] / time.Duration(counts[k])
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", k.phase, k.algo, k.n, mean)
	}
	_ = tw.Flush()
}
