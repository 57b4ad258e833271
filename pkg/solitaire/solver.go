package solitaire

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/klondikesolver/internal/cardkey"
	"github.com/yourusername/klondikesolver/internal/lrucache"
)

// SolverOptions configures a Solver. All fields have sane defaults; use
// DefaultSolverOptions as a starting point.
type SolverOptions struct {
	// Timeout bounds the wall-clock time Solve is allowed to run.
	Timeout time.Duration

	// StateCacheCapacity bounds the state-presence LRU.
	StateCacheCapacity int

	// MoveCacheCapacity bounds the tableau-to-tableau move LRU.
	MoveCacheCapacity int

	// LogEvery controls the diagnostic-emission cadence, in search-driver
	// calls. 0 disables diagnostics entirely.
	LogEvery int64

	// Logger receives diagnostic events. The zero value (zerolog.Logger{})
	// discards everything, so diagnostics are opt-in.
	Logger zerolog.Logger
}

// DefaultSolverOptions returns the defaults described for the core: a
// 30-second timeout, a million-entry state cache, a hundred-thousand-entry
// move cache, and diagnostics every 5,000 calls to a no-op logger.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Timeout:            30 * time.Second,
		StateCacheCapacity: 1_000_000,
		MoveCacheCapacity:  100_000,
		LogEvery:           5000,
		Logger:             zerolog.Nop(),
	}
}

// Solver is a single-use depth-first search over Klondike game states. A
// Solver owns its caches; construct a fresh one per Solve call that should
// not share pruning state with another.
type Solver struct {
	opts       SolverOptions
	stateCache *lrucache.PresenceCache[Fingerprint]
	moveCache  *TableauMoveCache
	startTime  time.Time
	calls      int64
}

// NewSolver constructs a Solver from opts, filling in non-positive cache
// capacities from DefaultSolverOptions.
func NewSolver(opts SolverOptions) *Solver {
	defaults := DefaultSolverOptions()
	if opts.StateCacheCapacity <= 0 {
		opts.StateCacheCapacity = defaults.StateCacheCapacity
	}
	if opts.MoveCacheCapacity <= 0 {
		opts.MoveCacheCapacity = defaults.MoveCacheCapacity
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	return &Solver{
		opts:       opts,
		stateCache: lrucache.NewPresenceCache[Fingerprint](opts.StateCacheCapacity),
		moveCache:  NewTableauMoveCache(opts.MoveCacheCapacity),
	}
}

// Solve runs the depth-first search from g and returns the verdict. g is
// never mutated; the search works entirely on clones.
func (s *Solver) Solve(g *Game) SolverResult {
	s.startTime = time.Now()
	s.calls = 0
	seen := make(map[cardkey.Key]int)

	moves, ok := s.solve(g, seen, false, 0)
	elapsed := time.Since(s.startTime)

	switch {
	case ok:
		return SolverResult{Status: Solved, Elapsed: elapsed, Moves: moves, Calls: s.calls}
	case elapsed >= s.opts.Timeout:
		return SolverResult{Status: Timeout, Elapsed: elapsed, Calls: s.calls}
	default:
		return SolverResult{Status: NoSolution, Elapsed: elapsed, Calls: s.calls}
	}
}

// solve is the search driver's single logical entry point. It returns the
// winning move sequence from state to a won position and true, or
// (nil, false) if no win is reachable within the timeout along this
// branch.
func (s *Solver) solve(g *Game, seen map[cardkey.Key]int, canFlipDeck bool, depth int) ([]Move, bool) {
	if time.Since(s.startTime) >= s.opts.Timeout {
		return nil, false
	}
	if g.IsWon() {
		return []Move{}, true
	}

	fp := g.Fingerprint(canFlipDeck)
	if s.stateCache.Contains(fp) {
		return nil, false
	}
	s.stateCache.Add(fp)

	s.calls++
	if s.opts.LogEvery > 0 && s.calls%s.opts.LogEvery == 0 {
		s.opts.Logger.Debug().
			Int64("calls", s.calls).
			Int("depth", depth).
			Int("state_cache_len", s.stateCache.Len()).
			Int("move_cache_len", s.moveCache.Len()).
			Dur("elapsed", time.Since(s.startTime)).
			Msg("solver progress")
	}

	for _, m := range g.GenerateMoves(s.moveCache) {
		if tail, ok := s.maybeApplyMove(m, g, seen, canFlipDeck, depth); ok {
			return append([]Move{m}, tail...), true
		}
	}
	return nil, false
}

// maybeApplyMove adjusts canFlipDeck, clones and applies m, enforces the
// repeated-stack guard for TABLEAU_TO_TABLEAU moves, and recurses.
func (s *Solver) maybeApplyMove(m Move, g *Game, seen map[cardkey.Key]int, canFlipDeck bool, depth int) ([]Move, bool) {
	nextCanFlip := canFlipDeck

	switch m.Kind {
	case Draw:
		if g.WasteSize == g.HandSize {
			if !canFlipDeck {
				return nil, false
			}
			nextCanFlip = false
		}
	case WasteToFoundation, WasteToTableau:
		nextCanFlip = true
	}

	clone := g.Clone()
	clone.Apply(m)

	if m.Kind == TableauToTableau {
		srcKey := stackKey(&clone.Tableau[m.SrcCol])
		dstKey := stackKey(&clone.Tableau[m.DstCol])
		if seenContains(seen, srcKey) && seenContains(seen, dstKey) {
			return nil, false
		}
		seenAdd(seen, srcKey)
		seenAdd(seen, dstKey)
		defer seenRemove(seen, srcKey)
		defer seenRemove(seen, dstKey)
	}

	return s.solve(clone, seen, nextCanFlip, depth+1)
}

// stackKey hashes the face-up contents of a tableau column for the
// repeated-stack guard. A 64-bit hash rather than exact membership: a
// collision prunes a genuine branch instead of merely a duplicate one.
func stackKey(col *TableauColumn) cardkey.Key {
	b := cardkey.NewBuilder()
	for i := 0; i < col.FaceUpSize; i++ {
		c := col.FaceUp[i]
		b.Byte(byte(c.Rank)).Byte(byte(c.Suit))
	}
	return b.Sum()
}

// seenContains, seenAdd, and seenRemove maintain a refcounted set so that
// a stack that was already a member before this call (inserted by an
// ancestor frame) is not evicted by this frame's matching remove.
func seenContains(seen map[cardkey.Key]int, key cardkey.Key) bool {
	return seen[key] > 0
}

func seenAdd(seen map[cardkey.Key]int, key cardkey.Key) {
	seen[key]++
}

func seenRemove(seen map[cardkey.Key]int, key cardkey.Key) {
	if seen[key] <= 1 {
		delete(seen, key)
	} else {
		seen[key]--
	}
}
