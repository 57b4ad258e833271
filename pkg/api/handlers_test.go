package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/yourusername/klondikesolver/pkg/solitaire"
)

func testHandlers() *Handlers {
	return NewHandlers("test-version", solitaire.DefaultSolverOptions(), zerolog.Nop(), NewWorkerPool(DefaultPoolConfig()))
}

func TestHealthHandler(t *testing.T) {
	h := testHandlers()

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	h.Health(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Health status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if health.Status != "ok" {
		t.Errorf("Status = %q, want %q", health.Status, "ok")
	}
	if health.Version != "test-version" {
		t.Errorf("Version = %q, want %q", health.Version, "test-version")
	}
	if health.Pool == nil {
		t.Fatal("Expected pool stats in the health response")
	}
}

func TestSolveHandler(t *testing.T) {
	h := testHandlers()
	deck := solitaire.SortedDeck()

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid deck",
			body:       SolveRequest{Deck: deck.String(), DrawSize: 3, TimeoutSeconds: 20},
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty deck",
			body:       SolveRequest{Deck: ""},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var body []byte
			if s, ok := tc.body.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tc.body)
			}
			req := httptest.NewRequest("POST", "/api/solve", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.Solve(w, req)

			resp := w.Result()
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("Status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}

			if tc.wantStatus == http.StatusOK {
				var solveResp SolveResponse
				if err := json.NewDecoder(resp.Body).Decode(&solveResp); err != nil {
					t.Fatalf("Decode error: %v", err)
				}
				if solveResp.Status != "SOLVED" {
					t.Errorf("Status = %q, want SOLVED for a sorted deck", solveResp.Status)
				}
			}
		})
	}
}

// ============================================================================
// WebSocket Tests
// ============================================================================

func TestSolveStreamReturnsResult(t *testing.T) {
	h := testHandlers()

	server := httptest.NewServer(http.HandlerFunc(h.SolveStream))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("WebSocket dial failed: %v", err)
	}
	defer ws.Close()

	req := SolveRequest{Deck: solitaire.SortedDeck().String(), DrawSize: 3, TimeoutSeconds: 20}
	if err := ws.WriteJSON(req); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	ws.SetReadDeadline(time.Now().Add(25 * time.Second))
	for {
		var frame map[string]interface{}
		if err := ws.ReadJSON(&frame); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if frame["type"] == "result" {
			if frame["status"] != "SOLVED" {
				t.Errorf("status = %v, want SOLVED", frame["status"])
			}
			return
		}
	}
}

func TestSolveStreamRejectsInvalidDeck(t *testing.T) {
	h := testHandlers()

	server := httptest.NewServer(http.HandlerFunc(h.SolveStream))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("WebSocket dial failed: %v", err)
	}
	defer ws.Close()

	if err := ws.WriteJSON(SolveRequest{Deck: "garbage"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame map[string]interface{}
	if err := ws.ReadJSON(&frame); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if frame["type"] != "error" {
		t.Errorf("type = %v, want error", frame["type"])
	}
}
