package viz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/tilepath/gridgraph"
	"github.com/katalvlaran/tilepath/search"
)

// HandlerConfig describes the search every connection replays.
type HandlerConfig struct {
	Graph       *gridgraph.GridGraph
	Start, Goal gridgraph.Point
	Mode        search.Mode
	Policy      search.GoalPolicy
	// Interval paces the stream; 0 sends frames as fast as the client reads.
	Interval time.Duration
	Logger   *slog.Logger
}

// Handler upgrades requests to websockets and streams one search per
// connection. The query parameter "mode" overrides the configured mode.
type Handler struct {
	cfg      HandlerConfig
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler returns a Handler for cfg.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mode := h.cfg.Mode
	if q := r.URL.Query().Get("mode"); q != "" {
		m, err := search.ParseMode(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mode = m
	}
	run, err := search.New(h.cfg.Graph, h.cfg.Start, h.cfg.Goal, mode,
		search.WithGoalPolicy(h.cfg.Policy),
		search.WithLogger(h.logger),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	// Drain client frames so close and ping control messages are handled.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(f Frame) error {
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("viz: marshal frame %d: %w", f.Seq, err)
		}
		return conn.WriteMessage(websocket.TextMessage, data)
	}

	err = Stream(ctx, run, h.cfg.Interval, send)
	switch {
	case err == nil:
		h.closeNormal(conn, r.RemoteAddr)
		h.logger.Info("stream finished", "remote", r.RemoteAddr, "mode", mode, "iterations", run.Iterations())
	case errors.Is(err, context.Canceled):
		h.logger.Info("stream cancelled", "remote", r.RemoteAddr, "iterations", run.Iterations())
	default:
		h.logger.Warn("stream failed", "remote", r.RemoteAddr, "error", err)
	}
}

// closeNormal sends the close frame that ends a completed stream.
func (h *Handler) closeNormal(conn *websocket.Conn, remote string) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "search complete")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		h.logger.Debug("close frame not sent", "remote", remote, "error", err)
	}
}

// Stream sends the initial frame (with the grid), then steps run once per
// tick and sends a frame after every step until the run completes or ctx is
// done. The caller owns run; Stream only calls Step and Snapshot.
func Stream(ctx context.Context, run *search.Run, interval time.Duration, send func(Frame) error) error {
	first := NewFrame(0, run.Snapshot(), nil)
	first.Grid = GridOf(run.Graph())
	if err := send(first); err != nil {
		return err
	}

	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for seq := 1; run.Status() == search.Running; seq++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		res := run.Step()
		var current *gridgraph.Point
		if res.Expanded {
			current = &res.Current
		}
		if err := send(NewFrame(seq, run.Snapshot(), current)); err != nil {
			return err
		}
	}
	return nil
}
