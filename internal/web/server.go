package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/sheetboard/internal/board"
	"github.com/rshade/sheetboard/internal/logging"
)

// projectParam selects the card whose detail is shown.
const projectParam = "project"

// readHeaderTimeout bounds slow clients.
const readHeaderTimeout = 10 * time.Second

// Handler serves the dashboard. Each page request performs one load.
type Handler struct {
	loader *board.Loader
	date   string
	mux    *http.ServeMux
}

// NewHandler returns the dashboard handler. date is the sidebar date,
// computed once by the caller at startup.
func NewHandler(loader *board.Loader, date string) *Handler {
	h := &Handler{loader: loader, date: date, mux: http.NewServeMux()}
	h.mux.HandleFunc("GET /{$}", h.handleDashboard)
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx).With().Str("component", "web").Logger()

	selected, status := parseSelection(r.URL.Query().Get(projectParam))

	var snap board.Snapshot
	_, _ = h.loader.Load(ctx, &snap)
	switch {
	case snap.Failed():
		status = http.StatusBadGateway
	case selected != NoSelection && selected >= len(snap.Cards):
		log.Debug().Int("project", selected).Msg("selected project out of range")
		status = http.StatusNotFound
	}

	var buf bytes.Buffer
	if err := WritePage(&buf, NewPage(snap, selected, h.date)); err != nil {
		log.Error().Err(err).Msg("rendering dashboard failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// parseSelection reads the project query value. A missing value selects
// nothing; a malformed one selects nothing and answers 400.
func parseSelection(raw string) (int, int) {
	if raw == "" {
		return NoSelection, http.StatusOK
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return NoSelection, http.StatusBadRequest
	}
	return n, http.StatusOK
}

// NewServer returns an http.Server for h whose request contexts derive from ctx,
// so the request logger and trace id are inherited.
func NewServer(ctx context.Context, addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

// ListenAndServe runs srv until ctx is done, then shuts it down gracefully.
// A listen error ends it immediately.
func ListenAndServe(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving on %s: %w", srv.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
