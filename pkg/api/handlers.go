package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

// Handlers holds the HTTP handlers and shared solver configuration.
type Handlers struct {
	version    string
	pool       *WorkerPool
	solverOpts solitaire.SolverOptions
	logger     zerolog.Logger
}

// NewHandlers creates a new Handlers instance. pool bounds concurrent
// fast operations (health checks, request validation) and slow operations
// (solves); pass NewWorkerPool(DefaultPoolConfig()) if the caller has no
// stricter limits of its own.
func NewHandlers(version string, solverOpts solitaire.SolverOptions, logger zerolog.Logger, pool *WorkerPool) *Handlers {
	return &Handlers{version: version, pool: pool, solverOpts: solverOpts, logger: logger}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// Health handles GET /api/health. It's a fast operation: gated through the
// fast pool so a flood of health checks can't starve it out from under
// deck validation.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.AcquireFast(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
		return
	}
	defer h.pool.ReleaseFast()

	stats := h.pool.Stats()
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: h.version, Pool: &stats})
}

// Solve handles POST /api/solve. Decoding and validating the request is a
// fast operation gated through the fast pool; only the solve itself holds a
// slow-pool slot, since a solve can legitimately run for the whole
// configured timeout.
func (h *Handlers) Solve(w http.ResponseWriter, r *http.Request) {
	deck, drawSize, timeoutSeconds, err := h.validateSolveRequest(w, r)
	if err != nil {
		return
	}

	if err := h.pool.AcquireSlow(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
		return
	}
	defer h.pool.ReleaseSlow()

	game, err := solitaire.NewGame(deck, drawSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_DEAL")
		return
	}

	opts := h.solverOpts
	opts.Timeout = time.Duration(timeoutSeconds) * time.Second
	opts.Logger = h.logger

	result := solitaire.NewSolver(opts).Solve(game)
	writeJSON(w, http.StatusOK, toSolveResponse(result))
}

// validateSolveRequest decodes and validates a solve request under a fast
// pool slot, writing an error response itself on failure.
func (h *Handlers) validateSolveRequest(w http.ResponseWriter, r *http.Request) (solitaire.Deck, int, int, error) {
	if err := h.pool.AcquireFast(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
		return nil, 0, 0, err
	}
	defer h.pool.ReleaseFast()

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return nil, 0, 0, err
	}

	deck, drawSize, timeoutSeconds, err := parseSolveRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_DECK")
		return nil, 0, 0, err
	}
	return deck, drawSize, timeoutSeconds, nil
}
