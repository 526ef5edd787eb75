package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ahmad2493/real-estate-platform/internal/lease"
	"github.com/ahmad2493/real-estate-platform/internal/listings"
	"github.com/ahmad2493/real-estate-platform/internal/rag"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

func (s *Server) registerRoutes(r chi.Router) {
	r.Post("/rag_query", s.handleRAGQuery)
	r.Post("/sync_listings", s.handleSyncAll)
	r.Post("/sync_listings/{id}", s.handleSyncOne)
	r.Put("/listings/{id}", s.handleUpdateListing)
	r.Delete("/listings/{id}", s.handleDeleteListing)
	r.Post("/add_pdfs", s.handleAddPDFs)
	r.Post("/lease/generate", s.handleGenerateLease)
}

type ragQueryRequest struct {
	Query   string        `json:"query"`
	History []rag.Message `json:"history,omitempty"`
	User    rag.User      `json:"user,omitempty"`
}

func (s *Server) handleRAGQuery(w http.ResponseWriter, r *http.Request) {
	var req ragQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	result, err := s.pipeline.Query(r.Context(), req.Query, req.History, req.User)
	if err != nil {
		writeUpstreamError(w, "rag_query", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSyncAll(w http.ResponseWriter, r *http.Request) {
	count, err := s.syncer.SyncAll(r.Context())
	if err != nil {
		writeUpstreamError(w, "sync_listings", err)
		return
	}
	s.persist(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("synced %d listings", count),
		"count":   count,
	})
}

func (s *Server) handleSyncOne(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.syncer.SyncByID(r.Context(), id); err != nil {
		if errors.Is(err, listings.ErrNotFound) {
			writeError(w, http.StatusNotFound, "listing not found")
			return
		}
		writeUpstreamError(w, "sync_listing", err)
		return
	}
	s.persist(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": "listing synced", "id": id})
}

func (s *Server) handleUpdateListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var l listings.Listing
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeError(w, http.StatusBadRequest, "invalid listing body")
		return
	}

	if err := s.syncer.UpdateOne(r.Context(), id, l); err != nil {
		if errors.Is(err, listings.ErrInvalidID) {
			writeError(w, http.StatusBadRequest, "invalid listing id")
			return
		}
		writeUpstreamError(w, "update_listing", err)
		return
	}
	s.persist(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": "listing updated", "id": id})
}

func (s *Server) handleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.syncer.DeleteOne(r.Context(), id); err != nil {
		writeUpstreamError(w, "delete_listing", err)
		return
	}
	s.persist(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": "listing removed from index", "id": id})
}

type addPDFsRequest struct {
	Paths  []string `json:"paths"`
	Source string   `json:"source"`
}

func (s *Server) handleAddPDFs(w http.ResponseWriter, r *http.Request) {
	var req addPDFsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Paths) == 0 {
		writeError(w, http.StatusBadRequest, "paths is required")
		return
	}
	source, ok := vectordb.ParseSourceType(req.Source)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown source type: "+req.Source)
		return
	}

	count, err := s.syncer.IngestPDFs(r.Context(), req.Paths, source)
	if err != nil {
		writeUpstreamError(w, "add_pdfs", err)
		return
	}
	s.persist(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("indexed %d chunks", count),
		"count":   count,
	})
}

type generateLeaseRequest struct {
	LeaseDetails lease.Details `json:"lease_details"`
	User         rag.User      `json:"user"`
}

func (s *Server) handleGenerateLease(w http.ResponseWriter, r *http.Request) {
	var req generateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := s.leaseGen.Generate(r.Context(), req.LeaseDetails, req.User.Role)
	if err != nil {
		switch {
		case errors.Is(err, lease.ErrAccessDenied):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, lease.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeUpstreamError(w, "generate_lease", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.PDF)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeUpstreamError logs the real failure and returns an opaque 500 so
// model and database errors do not leak to API callers.
func writeUpstreamError(w http.ResponseWriter, op string, err error) {
	log.Printf("server: %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
