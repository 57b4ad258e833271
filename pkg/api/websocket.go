package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // configure properly in production
	},
}

// progressWriter is an io.Writer that decodes zerolog's JSON log lines and
// forwards the fields the solver's diagnostic events carry as ProgressWire
// frames on a channel. It lets GET /api/solve/stream reuse the same
// diagnostic pipeline the solver already emits to, rather than adding a
// second progress-reporting mechanism to the core.
type progressWriter struct {
	frames chan<- ProgressWire
}

func (w progressWriter) Write(p []byte) (int, error) {
	var fields struct {
		Calls   int64   `json:"calls"`
		Elapsed float64 `json:"elapsed"`
	}
	if err := json.Unmarshal(p, &fields); err == nil {
		select {
		case w.frames <- ProgressWire{Type: "progress", Calls: fields.Calls, ElapsedSeconds: fields.Elapsed / 1000}:
		default:
		}
	}
	return len(p), nil
}

// SolveStream handles GET /api/solve/stream: the client sends one
// SolveRequest JSON frame, and the server streams "progress" frames followed
// by a single "result" frame.
func (h *Handlers) SolveStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	var req SolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(map[string]string{"type": "error", "error": "invalid request"})
		return
	}

	if err := h.pool.AcquireFast(r.Context()); err != nil {
		conn.WriteJSON(map[string]string{"type": "error", "error": "server busy"})
		return
	}
	deck, drawSize, timeoutSeconds, err := parseSolveRequest(req)
	var game *solitaire.Game
	if err == nil {
		game, err = solitaire.NewGame(deck, drawSize)
	}
	h.pool.ReleaseFast()
	if err != nil {
		conn.WriteJSON(map[string]string{"type": "error", "error": err.Error()})
		return
	}

	if err := h.pool.AcquireSlow(r.Context()); err != nil {
		conn.WriteJSON(map[string]string{"type": "error", "error": "server busy"})
		return
	}
	defer h.pool.ReleaseSlow()

	frames := make(chan ProgressWire, 16)
	opts := h.solverOpts
	opts.Timeout = time.Duration(timeoutSeconds) * time.Second
	opts.Logger = zerolog.New(progressWriter{frames: frames})

	done := make(chan solitaire.SolverResult, 1)
	go func() {
		done <- solitaire.NewSolver(opts).Solve(game)
		close(frames)
	}()

	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				frames = nil
				continue
			}
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		case result := <-done:
			conn.WriteJSON(newResultFrame(result))
			return
		}
	}
}
