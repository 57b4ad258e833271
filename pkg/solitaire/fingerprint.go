package solitaire

import (
	"sort"

	"github.com/yourusername/klondikesolver/internal/cardkey"
)

// Fingerprint is an equivalence-class key for a (Game, canFlipDeck) pair.
// Two states with the same fingerprint are mutually solvable or mutually
// unsolvable; the state cache uses this type as its key.
type Fingerprint = cardkey.Key

// emptyColSentinel marks a column with no face-down cards in the
// fingerprint's tableau section; it can never collide with a real column
// index (0..6).
const emptyColSentinel = 0xFF

// classifiedColumn is a tableau column annotated with the rank it sorts by
// during canonical-form assembly.
type classifiedColumn struct {
	idx  int
	col  *TableauColumn
	hasFaceDown bool
}

// Fingerprint computes the canonical-form hash described for the state
// cache key: canFlipDeck, wasteSize, the hand sequence verbatim, the
// foundation tops, and the tableau with columns sorted into a canonical
// order so that permutations of same-shape columns hash identically.
func (g *Game) Fingerprint(canFlipDeck bool) Fingerprint {
	b := cardkey.NewBuilder()

	b.Bool(canFlipDeck)
	b.Byte(byte(g.WasteSize))
	b.Sep()

	for i := 0; i < g.HandSize; i++ {
		c := g.Hand[i]
		b.Byte(byte(c.Rank)).Byte(byte(c.Suit))
	}
	b.Sep()

	for suit := 0; suit < NumSuits; suit++ {
		b.Byte(byte(g.Foundation[suit] + 1)) // +1 so "empty" (-1) is a distinct, non-negative byte
	}
	b.Sep()

	cols := make([]classifiedColumn, TableauSize)
	for i := range g.Tableau {
		col := &g.Tableau[i]
		cols[i] = classifiedColumn{idx: i, col: col, hasFaceDown: col.FaceDownSize > 0}
	}

	sort.SliceStable(cols, func(i, j int) bool {
		a, c := cols[i], cols[j]
		rankA, rankB := columnGroupRank(a), columnGroupRank(c)
		if rankA != rankB {
			return rankA < rankB
		}
		switch rankA {
		case 0: // both have face-down cards: order by original column index
			return a.idx < c.idx
		case 1: // both face-up only: order by first face-up card
			ca, cb := a.col.FaceUp[0], c.col.FaceUp[0]
			if ca.Suit != cb.Suit {
				return ca.Suit < cb.Suit
			}
			return ca.Rank < cb.Rank
		default: // both empty: fungible
			return false
		}
	})

	for _, cc := range cols {
		switch columnGroupRank(cc) {
		case 0:
			b.Byte(byte(cc.idx)).Byte(byte(cc.col.FaceDownSize))
			for i := 0; i < cc.col.FaceUpSize; i++ {
				c := cc.col.FaceUp[i]
				b.Byte(byte(c.Rank)).Byte(byte(c.Suit))
			}
		case 1:
			b.Byte(emptyColSentinel)
			for i := 0; i < cc.col.FaceUpSize; i++ {
				c := cc.col.FaceUp[i]
				b.Byte(byte(c.Rank)).Byte(byte(c.Suit))
			}
		default:
			b.Byte(emptyColSentinel)
		}
		b.Sep()
	}

	return b.Sum()
}

// columnGroupRank places a column into one of three canonical groups: 0 =
// has face-down cards, 1 = face-up only, 2 = fully empty.
func columnGroupRank(cc classifiedColumn) int {
	switch {
	case cc.hasFaceDown:
		return 0
	case cc.col.FaceUpSize > 0:
		return 1
	default:
		return 2
	}
}
