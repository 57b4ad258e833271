package solitaire

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveTriviallyWonState(t *testing.T) {
	g := newEmptyGame(3)
	for s := range g.Foundation {
		g.Foundation[s] = int8(King)
	}

	result := NewSolver(DefaultSolverOptions()).Solve(g)

	assert.Equal(t, Solved, result.Status)
	assert.Empty(t, result.Moves)
}

// A state with empty hand/waste and no face-down tableau cards anywhere
// satisfies the isWon() short-circuit immediately, regardless of what the
// foundation actually holds (see the design notes on the "won" shortcut).
// A single card sitting at the top of an otherwise-empty tableau is
// therefore already a won state, not a one-move-from-won state.
func TestSolveWonShortcutIgnoresFoundationContents(t *testing.T) {
	g := newEmptyGame(3)
	for s := range g.Foundation {
		g.Foundation[s] = int8(King) - 1
	}
	g.Tableau[0].FaceUp[0] = Card{Suit: Spades, Rank: King}
	g.Tableau[0].FaceUpSize = 1

	assert.True(t, g.IsWon())

	result := NewSolver(DefaultSolverOptions()).Solve(g)

	require.Equal(t, Solved, result.Status)
	assert.Empty(t, result.Moves)
}

func TestSolveExposesAndWinsWhenOneColumnHidesACard(t *testing.T) {
	g := newEmptyGame(3)
	for s := range g.Foundation {
		g.Foundation[s] = int8(King) - 1
	}
	// This column's face-up King is playable straight to its foundation;
	// once played, exposure clears the column's last face-down card and,
	// since every other column is already empty, the game is won.
	g.Tableau[0].FaceDown[0] = Card{Suit: Hearts, Rank: Rank(0)}
	g.Tableau[0].FaceDownSize = 1
	g.Tableau[0].FaceUp[0] = Card{Suit: Clubs, Rank: King}
	g.Tableau[0].FaceUpSize = 1

	require.False(t, g.IsWon())

	result := NewSolver(DefaultSolverOptions()).Solve(g)

	require.Equal(t, Solved, result.Status)
	require.Len(t, result.Moves, 1)
	assert.Equal(t, TableauToFoundationMove(0), result.Moves[0])
}

func TestSolveRecycleRequired(t *testing.T) {
	g := newEmptyGame(3)
	g.Hand[0] = Card{Suit: Spades, Rank: Ace}
	g.HandSize = 1

	result := NewSolver(DefaultSolverOptions()).Solve(g)

	require.Equal(t, Solved, result.Status)
	require.Len(t, result.Moves, 2)
	assert.Equal(t, Draw, result.Moves[0].Kind)
	assert.Equal(t, WasteToFoundation, result.Moves[1].Kind)
}

func TestSolvePrunedByCanFlipDeck(t *testing.T) {
	g := newEmptyGame(3)
	// No playable card anywhere: three unrelated low cards that cannot
	// stack or go to an empty foundation (not Aces, nowhere to land).
	g.Hand[0] = Card{Suit: Spades, Rank: Rank(5)}
	g.Hand[1] = Card{Suit: Spades, Rank: Rank(6)}
	g.Hand[2] = Card{Suit: Spades, Rank: Rank(7)}
	g.HandSize = 3

	result := NewSolver(DefaultSolverOptions()).Solve(g)

	assert.Equal(t, NoSolution, result.Status)
	assert.Empty(t, result.Moves)
}

func TestSolveTimeout(t *testing.T) {
	deck := ShuffledDeck(rand.New(rand.NewSource(7)))
	g, err := NewGame(deck, 3)
	require.NoError(t, err)

	opts := DefaultSolverOptions()
	opts.Timeout = time.Millisecond
	opts.StateCacheCapacity = 10
	opts.MoveCacheCapacity = 10

	result := NewSolver(opts).Solve(g)

	assert.Contains(t, []SolverStatus{Timeout, Solved, NoSolution}, result.Status)
	if result.Status == Timeout {
		assert.Empty(t, result.Moves)
	}
}

func TestSolveSortedDeckIsReplayable(t *testing.T) {
	g, err := NewGame(SortedDeck(), 3)
	require.NoError(t, err)

	opts := DefaultSolverOptions()
	opts.Timeout = 25 * time.Second
	result := NewSolver(opts).Solve(g)

	require.Equal(t, Solved, result.Status)

	replay, err := NewGame(SortedDeck(), 3)
	require.NoError(t, err)
	for _, m := range result.Moves {
		require.True(t, replay.IsValid(m), "move %s invalid during replay", m)
		replay.Apply(m)
	}
	assert.True(t, replay.IsWon())
}
