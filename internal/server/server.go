package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/lease"
	"github.com/ahmad2493/real-estate-platform/internal/listings"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

// QueryPipeline answers a query for an identified caller with optional
// conversation history.
type QueryPipeline interface {
	Query(ctx context.Context, query string, history []rag.Message, user rag.User) (*rag.Result, error)
}

// ListingSyncer keeps the vector index in step with the listing store.
type ListingSyncer interface {
	SyncAll(ctx context.Context) (int, error)
	SyncByID(ctx context.Context, id string) error
	DeleteOne(ctx context.Context, id string) error
	UpdateOne(ctx context.Context, id string, updated listings.Listing) error
	IngestPDFs(ctx context.Context, paths []string, source vectordb.SourceType) (int, error)
}

// LeaseGenerator produces a lease agreement PDF from structured details.
type LeaseGenerator interface {
	Generate(ctx context.Context, d lease.Details, callerRole string) (*lease.Document, error)
}

// Server is the HTTP front of the retrieval service.
type Server struct {
	cfg        config.ServerConfig
	pipeline   QueryPipeline
	syncer     ListingSyncer
	leaseGen   LeaseGenerator
	store      vectordb.Store
	vectorDir  string
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with all dependencies. store may be nil, in which
// case index mutations are not persisted to disk after each request.
func New(cfg config.ServerConfig, pipeline QueryPipeline, syncer ListingSyncer, leaseGen LeaseGenerator, store vectordb.Store, vectorDir string) *Server {
	s := &Server{
		cfg:       cfg,
		pipeline:  pipeline,
		syncer:    syncer,
		leaseGen:  leaseGen,
		store:     store,
		vectorDir: vectorDir,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if s.cfg.RatePerMinute > 0 {
		r.Use(rateLimit(s.cfg.RatePerMinute))
	}

	corsOpts := cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(120 * time.Second))
		s.registerRoutes(r)
	})

	// The chat socket lives outside the timeout group: its request context
	// spans the whole connection, and a deadline there would kill every
	// conversation after two minutes regardless of activity.
	r.Get("/ws/chat", s.handleChatSocket)

	return r
}

// Router returns the chi router, primarily for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("server: listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// persist writes the vector index to disk after a mutating request. A
// failure here does not fail the request; the mutation is already applied
// in memory and the next persist retries.
func (s *Server) persist(ctx context.Context) {
	if s.store == nil || s.vectorDir == "" {
		return
	}
	if err := s.store.Persist(ctx, s.vectorDir); err != nil {
		log.Printf("server: persisting vector index: %v", err)
	}
}
