package solitaire

import "fmt"

// MoveKind identifies one of the five move shapes a Klondike turn can take.
type MoveKind int8

const (
	Draw MoveKind = iota
	WasteToFoundation
	WasteToTableau
	TableauToFoundation
	TableauToTableau
)

// String returns the lowercase move-kind name used in logs and notation.
func (k MoveKind) String() string {
	switch k {
	case Draw:
		return "draw"
	case WasteToFoundation:
		return "waste-to-foundation"
	case WasteToTableau:
		return "waste-to-tableau"
	case TableauToFoundation:
		return "tableau-to-foundation"
	case TableauToTableau:
		return "tableau-to-tableau"
	default:
		return "unknown"
	}
}

// Move describes one legal action against a Game. Not every field is used
// by every Kind: SrcCol/SrcRow/DstCol are interpreted per Kind as a small
// fixed-arity extras tuple.
type Move struct {
	Kind MoveKind

	// SrcCol is the source tableau column for TableauToFoundation and
	// TableauToTableau.
	SrcCol int8

	// SrcRow is the face-up index (0 = bottommost face-up card) of the
	// card that starts the run being moved, for TableauToTableau only.
	SrcRow int8

	// DstCol is the destination tableau column for WasteToTableau and
	// TableauToTableau.
	DstCol int8
}

// DrawMove returns the single DRAW move.
func DrawMove() Move { return Move{Kind: Draw} }

// WasteToFoundationMove returns the WASTE_TO_FOUNDATION move.
func WasteToFoundationMove() Move { return Move{Kind: WasteToFoundation} }

// WasteToTableauMove returns a WASTE_TO_TABLEAU move targeting column dst.
func WasteToTableauMove(dst int) Move {
	return Move{Kind: WasteToTableau, DstCol: int8(dst)}
}

// TableauToFoundationMove returns a TABLEAU_TO_FOUNDATION move from column src.
func TableauToFoundationMove(src int) Move {
	return Move{Kind: TableauToFoundation, SrcCol: int8(src)}
}

// TableauToTableauMove returns a TABLEAU_TO_TABLEAU move carrying the run
// starting at face-up index row in column src onto column dst.
func TableauToTableauMove(src, row, dst int) Move {
	return Move{Kind: TableauToTableau, SrcCol: int8(src), SrcRow: int8(row), DstCol: int8(dst)}
}

// String renders a short move notation used for CLI transcripts and log
// messages: "draw", "w->f", "w->3", "4->f", "2:1->5". This is purely a
// display convenience; it does not participate in the wire encoding.
func (m Move) String() string {
	switch m.Kind {
	case Draw:
		return "draw"
	case WasteToFoundation:
		return "w->f"
	case WasteToTableau:
		return fmt.Sprintf("w->%d", m.DstCol)
	case TableauToFoundation:
		return fmt.Sprintf("%d->f", m.SrcCol)
	case TableauToTableau:
		return fmt.Sprintf("%d:%d->%d", m.SrcCol, m.SrcRow, m.DstCol)
	default:
		return "?"
	}
}
