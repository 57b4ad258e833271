package solitaire

import (
	"sort"

	"github.com/yourusername/klondikesolver/internal/cardkey"
	"github.com/yourusername/klondikesolver/internal/lrucache"
)

// MaxMoves is an observed upper bound on the number of candidates
// GenerateMoves can return for any reachable state.
const MaxMoves = 25

// MaxTableauMoves is an observed upper bound on the size of the
// non-revealing tableau-to-tableau group cached by TableauMoveCache.
const MaxTableauMoves = 14

// TableauMoveCache memoizes the non-revealing tableau-to-tableau move
// group (priority group 6) by tableau layout alone, since that group is
// the most expensive to regenerate and depends on nothing else.
type TableauMoveCache = lrucache.ValueCache[cardkey.Key, []Move]

// NewTableauMoveCache returns a TableauMoveCache bounded to capacity
// entries.
func NewTableauMoveCache(capacity int) *TableauMoveCache {
	return lrucache.NewValueCache[cardkey.Key, []Move](capacity)
}

// tableauKey hashes the tableau alone: for each column, its index,
// face-down count, and face-up cards, separated between columns. This is
// the key used by TableauMoveCache.
func (g *Game) tableauKey() cardkey.Key {
	b := cardkey.NewBuilder()
	for i := range g.Tableau {
		col := &g.Tableau[i]
		b.Byte(byte(i)).Byte(byte(col.FaceDownSize))
		for j := 0; j < col.FaceUpSize; j++ {
			c := col.FaceUp[j]
			b.Byte(byte(c.Rank)).Byte(byte(c.Suit))
		}
		b.Sep()
	}
	return b.Sum()
}

// GenerateMoves produces the prioritized candidate list for g, in the
// exact group order the search driver relies on: ace moves, other
// to-foundation moves, card-revealing tableau-to-tableau moves, waste-to-
// tableau moves, draw, then non-revealing tableau-to-tableau moves. cache
// may be nil, in which case the last group is always recomputed.
func (g *Game) GenerateMoves(cache *TableauMoveCache) []Move {
	moves := make([]Move, 0, MaxMoves)
	moves = g.addAceMoves(moves)
	moves = g.addToFoundationMoves(moves)
	moves = g.addCardRevealingMoves(moves)
	moves = g.addWasteToTableauMoves(moves)
	moves = g.addDrawMove(moves)
	moves = g.addTableauToTableauMoves(moves, cache)
	return moves
}

// addAceMoves appends any waste-to-foundation or tableau-to-foundation
// move whose source card is an Ace.
func (g *Game) addAceMoves(moves []Move) []Move {
	if top, ok := g.topOfWaste(); ok && top.Rank == Ace {
		moves = append(moves, WasteToFoundationMove())
	}
	for i := range g.Tableau {
		if top, ok := g.Tableau[i].TopFaceUp(); ok && top.Rank == Ace {
			moves = append(moves, TableauToFoundationMove(i))
		}
	}
	return moves
}

// addToFoundationMoves appends the remaining valid (non-Ace)
// waste-to-foundation and tableau-to-foundation moves.
func (g *Game) addToFoundationMoves(moves []Move) []Move {
	if top, ok := g.topOfWaste(); ok && top.Rank != Ace {
		if m := WasteToFoundationMove(); g.IsValid(m) {
			moves = append(moves, m)
		}
	}
	for i := range g.Tableau {
		if top, ok := g.Tableau[i].TopFaceUp(); ok && top.Rank != Ace {
			if m := TableauToFoundationMove(i); g.IsValid(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// addCardRevealingMoves appends tableau-to-tableau moves that move an
// entire face-up stack (and so expose a face-down card), sorted per the
// king-space heuristic described for priority group 3.
func (g *Game) addCardRevealingMoves(moves []Move) []Move {
	needsKingSpace := true
	var revealing []Move
	for i := range g.Tableau {
		src := &g.Tableau[i]
		if src.FaceUpSize == 0 {
			needsKingSpace = false
			continue
		}
		if src.FaceDownSize == 0 {
			continue
		}
		for j := range g.Tableau {
			if i == j {
				continue
			}
			m := TableauToTableauMove(i, 0, j)
			if g.IsValid(m) {
				revealing = append(revealing, m)
			}
		}
	}

	sort.SliceStable(revealing, func(a, b int) bool {
		lhsCount := g.Tableau[revealing[a].SrcCol].FaceDownSize
		rhsCount := g.Tableau[revealing[b].SrcCol].FaceDownSize
		if lhsCount == rhsCount {
			return revealing[a].SrcCol < revealing[b].SrcCol
		}
		if needsKingSpace {
			return lhsCount < rhsCount
		}
		return rhsCount < lhsCount
	})

	return append(moves, revealing...)
}

// addWasteToTableauMoves appends one WASTE_TO_TABLEAU move per valid
// destination column, in ascending column order.
func (g *Game) addWasteToTableauMoves(moves []Move) []Move {
	for dst := 0; dst < TableauSize; dst++ {
		if m := WasteToTableauMove(dst); g.IsValid(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// addDrawMove appends the single DRAW move if it is currently valid.
func (g *Game) addDrawMove(moves []Move) []Move {
	if m := DrawMove(); g.IsValid(m) {
		moves = append(moves, m)
	}
	return moves
}

// addTableauToTableauMoves appends the non-revealing tableau-to-tableau
// group (srcRow ≥ 1), consulting cache first and populating it on a miss.
func (g *Game) addTableauToTableauMoves(moves []Move, cache *TableauMoveCache) []Move {
	key := g.tableauKey()
	if cache != nil {
		if cached, ok := cache.Get(key); ok {
			return append(moves, cached...)
		}
	}

	fresh := make([]Move, 0, MaxTableauMoves)
	for src := 0; src < TableauSize; src++ {
		srcCol := &g.Tableau[src]
		for row := 1; row < srcCol.FaceUpSize; row++ {
			for dst := 0; dst < TableauSize; dst++ {
				if src == dst {
					continue
				}
				m := TableauToTableauMove(src, row, dst)
				if g.IsValid(m) {
					fresh = append(fresh, m)
				}
			}
		}
	}

	if cache != nil {
		cache.Add(key, fresh)
	}
	return append(moves, fresh...)
}
