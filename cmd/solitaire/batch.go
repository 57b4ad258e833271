package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/klondikesolver/pkg/batch"
	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

var (
	batchCount    int
	batchDrawSize int
	batchTimeout  time.Duration
	batchWorkers  int
	batchSeed     int64
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve many random deals and report aggregate statistics",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&batchCount, "count", 100, "number of random deals to generate")
	batchCmd.Flags().IntVar(&batchDrawSize, "draw-size", 3, "cards drawn from the talon per turn (1 or 3)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Second, "per-deal search timeout")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent solves (0 = runtime.GOMAXPROCS(0))")
	batchCmd.Flags().Int64Var(&batchSeed, "seed", 0, "seed for deck generation (0 picks an unpredictable seed)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}

	seed := batchSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	decks := make([]solitaire.Deck, batchCount)
	for i := range decks {
		decks[i] = solitaire.ShuffledDeck(rng)
	}

	opts := batch.Options{
		SolverOptions: solitaire.SolverOptions{Timeout: batchTimeout},
		DrawSize:      batchDrawSize,
		Workers:       batchWorkers,
	}

	result, err := batch.Run(decks, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Solved %d/%d deals\n", result.Stats.StatusCount[solitaire.Solved], result.Stats.Total)
	for status, count := range result.Stats.StatusCount {
		fmt.Printf("  %-12s %d\n", status, count)
	}
	fmt.Printf("Elapsed: mean %s, stddev %s\n",
		result.Stats.MeanElapsed.Round(time.Millisecond),
		result.Stats.StdDevElapsed.Round(time.Millisecond))
	return nil
}
