package solitaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMovesPrioritizesAces(t *testing.T) {
	g := newEmptyGame(3)
	g.Hand[0] = Card{Suit: Spades, Rank: Ace}
	g.HandSize = 1
	g.WasteSize = 1
	g.Tableau[0].FaceUp[0] = Card{Suit: Hearts, Rank: Ace}
	g.Tableau[0].FaceUpSize = 1

	moves := g.GenerateMoves(nil)
	require.NotEmpty(t, moves)
	assert.Equal(t, WasteToFoundation, moves[0].Kind)
	assert.Equal(t, TableauToFoundation, moves[1].Kind)
}

func TestGenerateMovesIncludesDrawAndWasteToTableau(t *testing.T) {
	g := newEmptyGame(3)
	g.Hand[0] = Card{Suit: Hearts, Rank: King}
	g.HandSize = 1
	g.WasteSize = 1

	moves := g.GenerateMoves(nil)

	var sawWasteToTableau, sawDraw bool
	for _, m := range moves {
		if m.Kind == WasteToTableau {
			sawWasteToTableau = true
		}
		if m.Kind == Draw {
			sawDraw = true
		}
	}
	assert.True(t, sawWasteToTableau)
	assert.True(t, sawDraw, "draw is valid whenever the hand/waste structure is non-empty")
}

func TestGenerateMovesDeterministic(t *testing.T) {
	deck := SortedDeck()
	g1, err := NewGame(deck, 3)
	require.NoError(t, err)
	g2, err := NewGame(deck, 3)
	require.NoError(t, err)

	assert.Equal(t, g1.GenerateMoves(nil), g2.GenerateMoves(nil))
}

func TestCardRevealingMovesPreferShallowPilesWhenNoKingSpace(t *testing.T) {
	g := newEmptyGame(3)

	// Sources: columns 0, 1, 2 each have one face-up card and a distinct
	// face-down depth (3, 1, 2 respectively).
	g.Tableau[0].FaceUp[0] = Card{Suit: Spades, Rank: Rank(5)}
	g.Tableau[0].FaceUpSize = 1
	g.Tableau[0].FaceDownSize = 3

	g.Tableau[1].FaceUp[0] = Card{Suit: Spades, Rank: Rank(6)}
	g.Tableau[1].FaceUpSize = 1
	g.Tableau[1].FaceDownSize = 1

	g.Tableau[2].FaceUp[0] = Card{Suit: Spades, Rank: Rank(7)}
	g.Tableau[2].FaceUpSize = 1
	g.Tableau[2].FaceDownSize = 2

	// Destinations: one matching card each, no face-down cards of their own.
	g.Tableau[3].FaceUp[0] = Card{Suit: Hearts, Rank: Rank(6)}
	g.Tableau[3].FaceUpSize = 1
	g.Tableau[4].FaceUp[0] = Card{Suit: Hearts, Rank: Rank(7)}
	g.Tableau[4].FaceUpSize = 1
	g.Tableau[5].FaceUp[0] = Card{Suit: Hearts, Rank: Rank(8)}
	g.Tableau[5].FaceUpSize = 1

	// Column 6 stays non-empty so no king space exists yet, keeping
	// needsKingSpace true: the shallowest source pile should sort first.
	g.Tableau[6].FaceUp[0] = Card{Suit: Clubs, Rank: King}
	g.Tableau[6].FaceUpSize = 1

	moves := g.addCardRevealingMoves(nil)
	require.Len(t, moves, 3)
	assert.EqualValues(t, 1, moves[0].SrcCol, "column with fewest face-down cards sorts first")
	assert.EqualValues(t, 2, moves[1].SrcCol)
	assert.EqualValues(t, 0, moves[2].SrcCol, "column with most face-down cards sorts last")
}

func TestTableauMoveCacheReused(t *testing.T) {
	cache := NewTableauMoveCache(16)
	deck := SortedDeck()
	g, err := NewGame(deck, 3)
	require.NoError(t, err)

	first := g.GenerateMoves(cache)
	assert.Equal(t, 1, cache.Len())

	second := g.GenerateMoves(cache)
	assert.Equal(t, first, second)
}
