package stub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/muurk/wordfinder/internal/discovery"
	"github.com/muurk/wordfinder/internal/logging"
	"github.com/muurk/wordfinder/internal/puzzle"
)

// maxRequestBody caps the size of a generation request.
const maxRequestBody = 1 << 20

// Config holds the server configuration
type Config struct {
	Host      string
	Port      int
	Path      string         // route for generation requests, default discovery.DefaultPath
	Fixture   *puzzle.Result // puzzle returned for every request, default SampleResult()
	Advertise bool           // register the service over mDNS
	Instance  string         // mDNS instance name
	Delay     time.Duration  // artificial latency before each reply
}

// Server is a generation service that always answers with the same puzzle.
type Server struct {
	config *Config
	r      chi.Router

	mu       sync.Mutex
	requests int
	httpSrv  *http.Server
	ad       *discovery.Advertisement
}

// New creates a new Server instance
func New(config *Config) *Server {
	if config.Path == "" {
		config.Path = discovery.DefaultPath
	}
	if config.Fixture == nil {
		config.Fixture = SampleResult()
	}
	if config.Instance == "" {
		config.Instance = "wordfinder-stub"
	}

	s := &Server{config: config, r: chi.NewRouter()}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10*time.Second + config.Delay))
	s.r.Use(jsonContentType)

	s.r.Get("/healthz", s.handleHealth)
	s.r.Get(config.Path, s.handleHealth)
	s.r.Post(config.Path, s.handleGenerate)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return s
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler { return s.r }

// Requests returns how many generation requests have been answered.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Start listens on the configured address and blocks until ctx is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve answers requests on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.mu.Lock()
	s.httpSrv = srv
	s.mu.Unlock()

	port := listener.Addr().(*net.TCPAddr).Port
	logging.Info("Stub generation service listening",
		zap.String("addr", listener.Addr().String()),
		zap.String("path", s.config.Path),
		zap.Int("grid_rows", s.config.Fixture.Grid.Rows()),
		zap.Int("grid_columns", s.config.Fixture.Grid.Columns()),
		zap.Int("placed_words", len(s.config.Fixture.PlacedWords)),
	)

	if s.config.Advertise {
		ad, err := discovery.Advertise(s.config.Instance, port, s.config.Path, map[string]string{
			"words": fmt.Sprint(len(s.config.Fixture.PlacedWords)),
		})
		if err != nil {
			// serving still works, clients just need --endpoint
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			s.mu.Lock()
			s.ad = ad
			s.mu.Unlock()
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown signal received, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		s.withdraw()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown withdraws the mDNS advertisement and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.withdraw()

	s.mu.Lock()
	srv := s.httpSrv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Shutdown timeout, forcing close", zap.Error(err))
		return srv.Close()
	}
	logging.Info("Server stopped", zap.Int("requests_served", s.Requests()))
	logging.Sync()
	return nil
}

func (s *Server) withdraw() {
	s.mu.Lock()
	ad := s.ad
	s.ad = nil
	s.mu.Unlock()
	ad.Shutdown()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"path":   s.config.Path,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	logging.LogBody("Generation request", body)

	var req puzzle.GenerationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if req.Words == nil {
		writeError(w, http.StatusBadRequest, "missing words")
		return
	}

	logging.Info("Generation request",
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.Stringer("rows", req.Rows),
		zap.Stringer("columns", req.Columns),
		zap.Strings("words", req.Words),
	)

	if s.config.Delay > 0 {
		select {
		case <-time.After(s.config.Delay):
		case <-r.Context().Done():
			return
		}
	}

	payload, err := puzzle.EncodeResponse(s.config.Fixture)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, ww.Status(), ww.BytesWritten())
	})
}

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
