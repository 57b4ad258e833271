// Package batch runs the solver over many decks concurrently and
// aggregates statistics across the batch, the way a Monte Carlo rollout
// aggregates many simulated games into a single equity estimate.
package batch

import (
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

// DeckResult is the per-deck outcome recorded during a batch run.
type DeckResult struct {
	Index   int
	Status  solitaire.SolverStatus
	Elapsed time.Duration
	Moves   int
}

// Stats summarizes a batch: the number of decks, how many ended in each
// status, and the mean and standard deviation of elapsed solve time
// across all decks.
type Stats struct {
	Total      int
	StatusCount map[solitaire.SolverStatus]int

	MeanElapsed   time.Duration
	StdDevElapsed time.Duration
}

// Result is the outcome of a full batch run.
type Result struct {
	Decks []DeckResult
	Stats Stats
}

// Options configures a batch run.
type Options struct {
	SolverOptions solitaire.SolverOptions
	DrawSize      int
	Workers       int // 0 means runtime.GOMAXPROCS(0)
}

// Run solves every deck in decks, at most opts.Workers concurrently, and
// returns per-deck results plus aggregate statistics. Each deck gets its
// own Solver instance, so no pruning state is shared across decks.
func Run(decks []solitaire.Deck, opts Options) (Result, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.DrawSize <= 0 {
		opts.DrawSize = 3
	}

	results := make([]DeckResult, len(decks))
	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	var firstErr error
	var errOnce sync.Once

	for i, deck := range decks {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, deck solitaire.Deck) {
			defer wg.Done()
			defer func() { <-sem }()

			g, err := solitaire.NewGame(deck, opts.DrawSize)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}

			solver := solitaire.NewSolver(opts.SolverOptions)
			r := solver.Solve(g)
			results[i] = DeckResult{Index: i, Status: r.Status, Elapsed: r.Elapsed, Moves: len(r.Moves)}
		}(i, deck)
	}
	wg.Wait()

	if firstErr != nil {
		return Result{}, firstErr
	}

	return Result{Decks: results, Stats: summarize(results)}, nil
}

// summarize aggregates per-deck results into batch-wide statistics, using
// gonum's mean/stddev helpers the same way a rollout aggregates per-trial
// equity samples.
func summarize(results []DeckResult) Stats {
	counts := make(map[solitaire.SolverStatus]int, 3)
	elapsed := make([]float64, len(results))
	for i, r := range results {
		counts[r.Status]++
		elapsed[i] = r.Elapsed.Seconds()
	}

	var mean, stddev float64
	switch {
	case len(elapsed) > 1:
		mean, stddev = stat.MeanStdDev(elapsed, nil)
	case len(elapsed) == 1:
		mean = elapsed[0] // stat.MeanStdDev divides by n-1: NaN for a single sample
	}

	return Stats{
		Total:         len(results),
		StatusCount:   counts,
		MeanElapsed:   time.Duration(mean * float64(time.Second)),
		StdDevElapsed: time.Duration(stddev * float64(time.Second)),
	}
}
