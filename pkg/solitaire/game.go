package solitaire

import "fmt"

// TableauSize is the fixed number of tableau columns.
const TableauSize = 7

// MaxHandSize is the maximum number of cards ever resident in the
// hand+waste talon structure (52 cards minus the 28 dealt to the tableau).
const MaxHandSize = 24

// TableauColumn holds the face-down and face-up stacks of one tableau
// column. Capacities are fixed so that cloning a Game never allocates.
type TableauColumn struct {
	FaceDown     [TableauSize - 1]Card
	FaceDownSize int
	FaceUp       [NumRanks]Card
	FaceUpSize   int
}

// TopFaceUp returns the accessible (topmost) face-up card and true, or the
// zero Card and false if the column has no face-up cards.
func (c *TableauColumn) TopFaceUp() (Card, bool) {
	if c.FaceUpSize == 0 {
		return Card{}, false
	}
	return c.FaceUp[c.FaceUpSize-1], true
}

// Game is the full state of one Klondike deal: the foundation, the
// hand/waste talon, and the seven tableau columns. A Game is mutated only
// through Apply; Clone produces an independent copy with no shared mutable
// state, suitable for the solver's backtracking search stack.
type Game struct {
	DrawSize int

	// Foundation[suit] is the highest rank placed on that suit's pile, or
	// -1 if the pile is empty.
	Foundation [NumSuits]int8

	// Hand holds the talon: the last WasteSize cards (counting from Hand
	// up to HandSize) form the waste, top of waste (the most recently
	// drawn card) being the element at index HandSize-WasteSize. The
	// remaining prefix is the undrawn hand.
	Hand      [MaxHandSize]Card
	HandSize  int
	WasteSize int

	Tableau [TableauSize]TableauColumn
}

// NewGame deals a fresh game from a 52-card deck. The first 24 cards (in
// deck order) become the hand; the remaining 28 populate the tableau
// column-by-column, dealing each column i its i face-down cards followed by
// one face-up card.
func NewGame(deck Deck, drawSize int) (*Game, error) {
	if len(deck) != NumCards {
		return nil, fmt.Errorf("%w: got %d cards", ErrWrongDeckSize, len(deck))
	}
	if drawSize <= 0 {
		return nil, fmt.Errorf("drawSize must be positive, got %d", drawSize)
	}

	g := &Game{DrawSize: drawSize, HandSize: MaxHandSize}
	for s := range g.Foundation {
		g.Foundation[s] = -1
	}

	copy(g.Hand[:], deck[:MaxHandSize])

	next := MaxHandSize
	for col := 0; col < TableauSize; col++ {
		for row := 0; row <= col; row++ {
			card := deck[next]
			next++
			column := &g.Tableau[col]
			if row == col {
				column.FaceUp[column.FaceUpSize] = card
				column.FaceUpSize++
			} else {
				column.FaceDown[column.FaceDownSize] = card
				column.FaceDownSize++
			}
		}
	}
	return g, nil
}

// Clone returns an independent deep copy of the game. Because every field
// is a fixed-size array or scalar, this is a single value copy.
func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

// topOfWaste returns the top-of-waste card and true, or the zero Card and
// false if the waste is empty.
func (g *Game) topOfWaste() (Card, bool) {
	if g.WasteSize == 0 {
		return Card{}, false
	}
	return g.Hand[g.HandSize-g.WasteSize], true
}

// IsValid reports whether move is legal to apply to the current state.
// Malformed extras (wrong column/row indices) yield false rather than an
// error.
func (g *Game) IsValid(m Move) bool {
	switch m.Kind {
	case Draw:
		return g.HandSize > 0

	case WasteToFoundation:
		top, ok := g.topOfWaste()
		if !ok {
			return false
		}
		return int8(top.Rank) == g.Foundation[top.Suit]+1

	case WasteToTableau:
		dst := m.DstCol
		if dst < 0 || int(dst) >= TableauSize {
			return false
		}
		top, ok := g.topOfWaste()
		if !ok {
			return false
		}
		return g.canStack(top, &g.Tableau[dst])

	case TableauToFoundation:
		src := m.SrcCol
		if src < 0 || int(src) >= TableauSize {
			return false
		}
		card, ok := g.Tableau[src].TopFaceUp()
		if !ok {
			return false
		}
		return int8(card.Rank) == g.Foundation[card.Suit]+1

	case TableauToTableau:
		src, row, dst := m.SrcCol, m.SrcRow, m.DstCol
		if src < 0 || int(src) >= TableauSize || dst < 0 || int(dst) >= TableauSize {
			return false
		}
		srcCol := &g.Tableau[src]
		if row < 0 || int(row) >= srcCol.FaceUpSize {
			return false
		}
		return g.canStack(srcCol.FaceUp[row], &g.Tableau[dst])

	default:
		return false
	}
}

// canStack reports whether card may be placed on top of dst's face-up
// stack: a King onto an empty column, or a card one rank below and the
// opposite color of dst's current top.
func (g *Game) canStack(card Card, dst *TableauColumn) bool {
	top, ok := dst.TopFaceUp()
	if !ok {
		return card.Rank == King
	}
	return DifferentColor(card, top) && card.Rank == top.Rank-1
}

// removeFromTalon deletes the element at position HandSize-WasteSize
// (the current top of waste) from the Hand array, shifting later elements
// down, then shrinks HandSize and WasteSize.
func (g *Game) removeFromTalon() {
	i := g.HandSize - g.WasteSize
	copy(g.Hand[i:g.HandSize-1], g.Hand[i+1:g.HandSize])
	g.HandSize--
	g.WasteSize--
}

// Apply mutates the game according to move, which must already satisfy
// IsValid. After the move, the exposure rule is applied to every tableau
// column.
func (g *Game) Apply(m Move) {
	switch m.Kind {
	case Draw:
		if g.WasteSize == g.HandSize {
			g.WasteSize = 0
		}
		g.WasteSize += g.DrawSize
		if g.WasteSize > g.HandSize {
			g.WasteSize = g.HandSize
		}

	case WasteToFoundation:
		card, _ := g.topOfWaste()
		g.Foundation[card.Suit] = int8(card.Rank)
		g.removeFromTalon()

	case WasteToTableau:
		card, _ := g.topOfWaste()
		col := &g.Tableau[m.DstCol]
		col.FaceUp[col.FaceUpSize] = card
		col.FaceUpSize++
		g.removeFromTalon()

	case TableauToFoundation:
		col := &g.Tableau[m.SrcCol]
		card := col.FaceUp[col.FaceUpSize-1]
		col.FaceUpSize--
		g.Foundation[card.Suit] = int8(card.Rank)

	case TableauToTableau:
		src := &g.Tableau[m.SrcCol]
		dst := &g.Tableau[m.DstCol]
		for i := m.SrcRow; int(i) < src.FaceUpSize; i++ {
			dst.FaceUp[dst.FaceUpSize] = src.FaceUp[i]
			dst.FaceUpSize++
		}
		src.FaceUpSize = int(m.SrcRow)
	}

	g.exposeFaceDown()
}

// exposeFaceDown flips the topmost face-down card into a column's face-up
// stack whenever that column's face-up stack is empty but face-down cards
// remain. Idempotent: calling it again once no column needs exposure is a
// no-op.
func (g *Game) exposeFaceDown() {
	for i := range g.Tableau {
		col := &g.Tableau[i]
		if col.FaceUpSize == 0 && col.FaceDownSize > 0 {
			col.FaceUp[0] = col.FaceDown[col.FaceDownSize-1]
			col.FaceUpSize = 1
			col.FaceDownSize--
		}
	}
}

// IsWon reports whether the game is in a won state: no cards left in the
// hand/waste and no face-down cards remaining in the tableau. Strictly the
// game is won only once every foundation holds a King, but once the talon
// is empty and every column is fully exposed the remaining position is
// always winnable by greedy foundation plays, so this is a sound, fast
// short-circuit.
func (g *Game) IsWon() bool {
	if g.HandSize > 0 {
		return false
	}
	for i := range g.Tableau {
		if g.Tableau[i].FaceDownSize > 0 {
			return false
		}
	}
	return true
}

// String renders the game as a compact, human-readable board for
// debugging. Solver decision logic never calls it.
func (g *Game) String() string {
	s := ""
	if g.WasteSize < g.HandSize {
		s += "[] "
	} else {
		s += "   "
	}
	if top, ok := g.topOfWaste(); ok {
		s += top.String() + " "
	} else {
		s += "   "
	}
	s += "  "
	for suit := 0; suit < NumSuits; suit++ {
		if rank := g.Foundation[suit]; rank >= 0 {
			s += Card{Suit: Suit(suit), Rank: Rank(rank)}.String() + " "
		} else {
			s += "   "
		}
	}
	height := 0
	for i := range g.Tableau {
		h := g.Tableau[i].FaceDownSize + g.Tableau[i].FaceUpSize
		if h > height {
			height = h
		}
	}
	for row := 0; row < height; row++ {
		s += "\n    "
		for i := range g.Tableau {
			col := &g.Tableau[i]
			switch {
			case row < col.FaceDownSize:
				s += "## "
			case row < col.FaceDownSize+col.FaceUpSize:
				s += col.FaceUp[row-col.FaceDownSize].String() + " "
			default:
				s += "   "
			}
		}
	}
	return s
}
