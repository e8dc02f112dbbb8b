// Package server exposes the analyzer over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dshills/codescore/internal/engine"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

// Server wires the controllers into a router and owns the http.Server.
type Server struct {
	info   *SystemInfo
	engine *engine.Engine
	health HealthController
	router *mux.Router
}

// New builds the router for e. When CacheSize is positive, results are
// memoized in an LRU cache of that size.
func New(info *SystemInfo, e *engine.Engine) *Server {
	if info.CacheSize > 0 {
		e = e.WithCache(engine.NewCache(info.CacheSize, info.CacheTTL))
	}

	analyzeController := NewAnalyzeController(e, info.MaxUploadBytes)
	schemaController := NewSchemaController(e.Profile())
	healthController := NewHealthController()

	router := mux.NewRouter()
	router.Use(requestID)
	router.HandleFunc("/api/analyze-code", analyzeController.AnalyzeCode).Methods(http.MethodPost)
	router.HandleFunc("/api/schema", schemaController.GetResultSchema).Methods(http.MethodGet)
	router.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)

	return &Server{info: info, engine: e, health: healthController, router: router}
}

// Handler returns the full handler chain: CORS and compression around the router.
func (s *Server) Handler() http.Handler {
	var corsOptions []handlers.CORSOption

	corsOptions = append(corsOptions, handlers.AllowedHeaders([]string{"Connection", "Accept-Encoding", "Content-Encoding", "X-Requested-With", "Content-Type", RequestIDHeader}))

	if s.info.OriginAllowed != "" {
		corsOptions = append(corsOptions, handlers.AllowedOrigins([]string{s.info.OriginAllowed}))
	}
	corsOptions = append(corsOptions, handlers.AllowedMethods([]string{"GET", "HEAD", "POST", "OPTIONS"}))
	corsOptions = append(corsOptions, handlers.ExposedHeaders([]string{RequestIDHeader}))

	return handlers.CompressHandler(handlers.CORS(corsOptions...)(s.router))
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		Addr:         s.info.ListenAddress,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("Listen addr = %s", s.info.ListenAddress)
		errc <- srv.ListenAndServe()
	}()
	s.health.SetReady(true)

	select {
	case err := <-errc:
		s.health.SetReady(false)
		return err
	case <-ctx.Done():
	}

	s.health.SetReady(false)
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestID tags every request and response with an id, reusing one the
// client sent.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		log.WithField("request_id", id).Debugf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
