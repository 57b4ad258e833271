// Package api provides an HTTP/JSON and WebSocket interface to the solver.
package api

import (
	"fmt"

	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

// ============================================================================
// Request Types
// ============================================================================

// SolveRequest is the request body for POST /api/solve and the initial
// WebSocket frame for GET /api/solve/stream.
type SolveRequest struct {
	Deck           string `json:"deck"`                      // 104-character deck encoding
	DrawSize       int    `json:"draw_size,omitempty"`        // 1 or 3 (default 3)
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`  // solve timeout (default 30)
}

// ============================================================================
// Response Types
// ============================================================================

// MoveWire is the wire encoding of a solitaire.Move: a type tag plus a small
// extras array, the way spec.md's move table lists extras by kind. Unused
// slots are omitted rather than sentinel-filled, since JSON arrays are
// naturally variable-length.
type MoveWire struct {
	Kind   string `json:"kind"`
	Extras []int  `json:"extras,omitempty"`
}

// toMoveWire converts a solitaire.Move to its wire form.
func toMoveWire(m solitaire.Move) MoveWire {
	switch m.Kind {
	case solitaire.Draw:
		return MoveWire{Kind: "draw"}
	case solitaire.WasteToFoundation:
		return MoveWire{Kind: "waste_to_foundation"}
	case solitaire.WasteToTableau:
		return MoveWire{Kind: "waste_to_tableau", Extras: []int{int(m.DstCol)}}
	case solitaire.TableauToFoundation:
		return MoveWire{Kind: "tableau_to_foundation", Extras: []int{int(m.SrcCol)}}
	case solitaire.TableauToTableau:
		return MoveWire{Kind: "tableau_to_tableau", Extras: []int{int(m.SrcCol), int(m.SrcRow), int(m.DstCol)}}
	default:
		return MoveWire{Kind: "unknown"}
	}
}

// SolveResponse is the response for POST /api/solve and the final frame of
// GET /api/solve/stream.
type SolveResponse struct {
	Status         string     `json:"status"` // "SOLVED", "TIMEOUT", or "NO_SOLUTION"
	ElapsedSeconds float64    `json:"elapsed_seconds"`
	Calls          int64      `json:"calls"`
	Moves          []MoveWire `json:"moves"`
}

// toSolveResponse converts a solitaire.SolverResult to its wire form.
func toSolveResponse(r solitaire.SolverResult) SolveResponse {
	moves := make([]MoveWire, len(r.Moves))
	for i, m := range r.Moves {
		moves[i] = toMoveWire(m)
	}
	return SolveResponse{
		Status:         r.Status.String(),
		ElapsedSeconds: r.Elapsed.Seconds(),
		Calls:          r.Calls,
		Moves:          moves,
	}
}

// ErrorResponse is returned when an error occurs.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is the response for health check.
type HealthResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Pool    *PoolStats `json:"pool,omitempty"`
}

// ProgressWire is a diagnostic frame streamed during GET /api/solve/stream,
// mirroring the periodic diagnostic emission described for the solver's
// structured logging (see the solver's LogEvery option).
type ProgressWire struct {
	Type           string  `json:"type"` // always "progress"
	Calls          int64   `json:"calls"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// resultFrame wraps a SolveResponse as a tagged WebSocket frame.
type resultFrame struct {
	Type string `json:"type"` // always "result"
	SolveResponse
}

func newResultFrame(r solitaire.SolverResult) resultFrame {
	return resultFrame{Type: "result", SolveResponse: toSolveResponse(r)}
}

// parseSolveRequest validates a SolveRequest and fills in defaults.
func parseSolveRequest(req SolveRequest) (solitaire.Deck, int, int, error) {
	deck, err := solitaire.ParseDeck(req.Deck)
	if err != nil {
		return solitaire.Deck{}, 0, 0, fmt.Errorf("invalid deck: %w", err)
	}
	drawSize := req.DrawSize
	if drawSize != 1 && drawSize != 3 {
		drawSize = 3
	}
	timeoutSeconds := req.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	return deck, drawSize, timeoutSeconds, nil
}
