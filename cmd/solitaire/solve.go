package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

var (
	solveDeck       string
	solveSorted     bool
	solveRandom     bool
	solveSeed       int64
	solveDrawSize   int
	solveTimeout    time.Duration
	solveStateCache int
	solveMoveCache  int
	solveJSON       bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a single Klondike deal",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveDeck, "deck", "", "104-character deck encoding")
	solveCmd.Flags().BoolVar(&solveSorted, "sorted", false, "use the canonical suit-major sorted deck")
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "shuffle a fresh random deck")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "seed for --random (0 picks an unpredictable seed)")
	solveCmd.Flags().IntVar(&solveDrawSize, "draw-size", 3, "cards drawn from the talon per turn (1 or 3)")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "wall-clock search timeout")
	solveCmd.Flags().IntVar(&solveStateCache, "state-cache", 1_000_000, "state-presence cache capacity")
	solveCmd.Flags().IntVar(&solveMoveCache, "move-cache", 100_000, "tableau-move cache capacity")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "emit the result as JSON instead of a transcript")
}

// jsonResult is the --json transcript: a flatter, string-move form of
// solitaire.SolverResult suitable for scripting.
type jsonResult struct {
	Status         string   `json:"status"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
	Calls          int64    `json:"calls"`
	Moves          []string `json:"moves"`
}

func moveStrings(moves []solitaire.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func resolveDeck() (solitaire.Deck, error) {
	switch {
	case solveDeck != "":
		return solitaire.ParseDeck(solveDeck)
	case solveSorted:
		return solitaire.SortedDeck(), nil
	case solveRandom:
		seed := solveSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return solitaire.ShuffledDeck(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("exactly one of --deck, --sorted, or --random is required")
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	deck, err := resolveDeck()
	if err != nil {
		return err
	}

	game, err := solitaire.NewGame(deck, solveDrawSize)
	if err != nil {
		return fmt.Errorf("dealing failed: %w", err)
	}

	logger := zerolog.Nop()
	if !solveJSON {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	opts := solitaire.SolverOptions{
		Timeout:            solveTimeout,
		StateCacheCapacity: solveStateCache,
		MoveCacheCapacity:  solveMoveCache,
		LogEvery:           5000,
		Logger:             logger,
	}

	result := solitaire.NewSolver(opts).Solve(game)

	if solveJSON {
		return json.NewEncoder(os.Stdout).Encode(jsonResult{
			Status:         result.Status.String(),
			ElapsedSeconds: result.Elapsed.Seconds(),
			Calls:          result.Calls,
			Moves:          moveStrings(result.Moves),
		})
	}

	fmt.Printf("%s in %s (%d calls)\n", result.Status, result.Elapsed.Round(time.Millisecond), result.Calls)
	for i, m := range result.Moves {
		fmt.Printf("  %3d. %s\n", i+1, m)
	}
	if result.Status != solitaire.Solved {
		os.Exit(1)
	}
	return nil
}
