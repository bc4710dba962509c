// Package server is the local HTTP surface of formbridge: it serves the
// forms tree, carries bridge calls from remote pages and streams web view
// navigations to them.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bnema/formbridge/internal/domain/entity"
	"github.com/bnema/formbridge/internal/infrastructure/webview"
	"github.com/bnema/formbridge/internal/logging"
)

const (
	maxBridgeBody     = 1 << 20
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
	keepAliveInterval = 15 * time.Second
)

// BridgeHandler runs one encoded bridge request and returns the value to
// encode as the response.
type BridgeHandler func(payload []byte) any

// EventSource streams web view navigations.
type EventSource interface {
	Subscribe() (<-chan webview.Event, func())
}

// FormLister lists registered forms of an app.
type FormLister interface {
	List(ctx context.Context, appName string) ([]*entity.Form, error)
}

// Options configures a Server. Only Addr and FormsRoot are required.
type Options struct {
	Addr      string
	FormsRoot string
	AppName   string
	Bridge    BridgeHandler
	Events    EventSource
	Forms     FormLister
	Health    func() bool
	// Back handles the web view's back button. The host answers
	// asynchronously, so the route only acknowledges the request.
	Back func()
}

// Server wraps an http.Server over a mux router.
type Server struct {
	opts   Options
	router *mux.Router
	http   *http.Server
}

// New builds the router. Nothing listens until Serve.
func New(ctx context.Context, opts Options) *Server {
	s := &Server{opts: opts}
	s.router = s.routes(logging.WithComponent(ctx, "server"))
	s.http = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes(ctx context.Context) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth(ctx)).Methods(http.MethodGet)
	if s.opts.Bridge != nil {
		r.HandleFunc("/bridge", s.handleBridge(ctx)).Methods(http.MethodPost)
	}
	if s.opts.Events != nil {
		r.HandleFunc("/webview/events", s.handleEvents(ctx)).Methods(http.MethodGet)
	}
	if s.opts.Back != nil {
		r.HandleFunc("/webview/back", s.handleBack(ctx)).Methods(http.MethodPost)
	}
	if s.opts.Forms != nil {
		r.HandleFunc("/api/forms", s.handleForms(ctx)).Methods(http.MethodGet)
		r.HandleFunc("/api/apps/{app}/forms", s.handleForms(ctx)).Methods(http.MethodGet)
	}

	// Page URLs are /<app>/tables/<table>/forms/<form>[/<version>]/index.html
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.opts.FormsRoot))).Methods(http.MethodGet, http.MethodHead)
	return r
}

func (s *Server) handleHealth(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		database := true
		if s.opts.Health != nil {
			database = s.opts.Health()
		}
		status := http.StatusOK
		if !database {
			status = http.StatusServiceUnavailable
		}
		writeJSON(ctx, w, status, map[string]any{"status": http.StatusText(status), "database": database})
	}
}

func (s *Server) handleBridge(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBridgeBody))
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to read bridge request")
			http.Error(w, "request too large or unreadable", http.StatusBadRequest)
			return
		}
		// Bridge errors travel inside the response body; transport is always 200.
		writeJSON(ctx, w, http.StatusOK, s.opts.Bridge(payload))
	}
}

func (s *Server) handleBack(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		logging.FromContext(ctx).Debug().Msg("back requested")
		s.opts.Back()
		w.WriteHeader(http.StatusAccepted)
	}
}

func (s *Server) handleForms(ctx context.Context) http.HandlerFunc {
	type formView struct {
		Reference    entity.FormReference `json:"reference"`
		Title        string               `json:"title"`
		LastModified time.Time            `json:"last_modified"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		app := mux.Vars(r)["app"]
		if app == "" {
			app = s.opts.AppName
		}
		forms, err := s.opts.Forms.List(r.Context(), app)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("app", app).Msg("failed to list forms")
			http.Error(w, "failed to list forms", http.StatusServiceUnavailable)
			return
		}
		out := make([]formView, 0, len(forms))
		for _, f := range forms {
			out = append(out, formView{Reference: f.Reference, Title: f.Title, LastModified: f.LastModified})
		}
		writeJSON(ctx, w, http.StatusOK, out)
	}
}

func (s *Server) handleEvents(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}
		log := logging.FromContext(ctx)

		events, cancel := s.opts.Events.Subscribe()
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-keepAlive.C:
				if _, err := io.WriteString(w, ": keep-alive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			case ev, ok := <-events:
				if !ok {
					log.Debug().Msg("event subscriber closed")
					return
				}
				data, err := json.Marshal(ev)
				if err != nil {
					log.Error().Err(err).Msg("failed to encode webview event")
					continue
				}
				if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.Seq, ev.Type, data); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to write response")
	}
}

// Serve listens on Addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is done.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	log := logging.FromContext(ctx)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("form server listening")
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown form server: %w", err)
		}
		return nil
	}
}
