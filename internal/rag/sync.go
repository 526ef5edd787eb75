package rag

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/listings"
	"github.com/ahmad2493/real-estate-platform/internal/transform"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

// Syncer keeps the vector index in step with the listings store and handles
// PDF ingestion.
type Syncer struct {
	source   listings.Source
	store    vectordb.Store
	chunking config.ChunkingConfig
	loadPDF  transform.PageLoader
}

// NewSyncer creates a syncer. loadPDF may be nil, in which case the real PDF
// loader is used.
func NewSyncer(source listings.Source, store vectordb.Store, chunking config.ChunkingConfig, loadPDF transform.PageLoader) *Syncer {
	if loadPDF == nil {
		loadPDF = transform.LoadPDFPages
	}
	return &Syncer{
		source:   source,
		store:    store,
		chunking: chunking,
		loadPDF:  loadPDF,
	}
}

// SyncAll loads every listing from the source store, transforms each into an
// indexed document, and bulk-inserts them. Returns the number of documents
// inserted. A failure partway through is not rolled back.
func (s *Syncer) SyncAll(ctx context.Context) (int, error) {
	all, err := s.source.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading listings: %w", err)
	}
	if len(all) == 0 {
		log.Print("sync: no listings found to sync")
		return 0, nil
	}

	docs := make([]vectordb.Document, len(all))
	for i, l := range all {
		docs[i] = transform.ListingDocument(l)
	}
	if err := s.store.Add(ctx, docs); err != nil {
		return 0, fmt.Errorf("indexing listings: %w", err)
	}

	log.Printf("sync: indexed %d listings", len(docs))
	return len(docs), nil
}

// SyncOne transforms and inserts a single listing.
func (s *Syncer) SyncOne(ctx context.Context, l listings.Listing) error {
	if err := s.store.Add(ctx, []vectordb.Document{transform.ListingDocument(l)}); err != nil {
		return fmt.Errorf("indexing listing %s: %w", l.Hex(), err)
	}
	log.Printf("sync: indexed listing %s", l.Hex())
	return nil
}

// SyncByID fetches a listing from the source store by id and indexes it.
func (s *Syncer) SyncByID(ctx context.Context, id string) error {
	l, err := s.source.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.SyncOne(ctx, *l)
}

// DeleteOne removes every indexed document whose metadata id matches.
func (s *Syncer) DeleteOne(ctx context.Context, id string) error {
	if err := s.store.DeleteByListingID(ctx, id); err != nil {
		return fmt.Errorf("deleting listing %s from index: %w", id, err)
	}
	log.Printf("sync: deleted listing %s from index", id)
	return nil
}

// UpdateOne replaces the indexed document for a listing: delete by id, then
// re-insert the new version. The two steps are not atomic; a reader between
// them observes the listing as absent from the index. The path id is
// authoritative; API bodies routinely omit the id field, and an id that
// disagrees with the path must not produce an orphaned document.
func (s *Syncer) UpdateOne(ctx context.Context, id string, updated listings.Listing) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", listings.ErrInvalidID, id)
	}
	updated.ID = oid

	if err := s.DeleteOne(ctx, id); err != nil {
		return err
	}
	if err := s.SyncOne(ctx, updated); err != nil {
		return err
	}
	log.Printf("sync: updated listing %s in index", id)
	return nil
}

// IngestPDFs loads each PDF, splits its pages per the source type's chunking
// options, tags every chunk with the source, and bulk-inserts the result.
// Returns the number of chunks inserted.
func (s *Syncer) IngestPDFs(ctx context.Context, paths []string, source vectordb.SourceType) (int, error) {
	opts := transform.OptionsForSource(source, s.chunking)

	var docs []vectordb.Document
	for _, path := range paths {
		pages, err := s.loadPDF(path)
		if err != nil {
			return 0, fmt.Errorf("loading %s: %w", path, err)
		}
		docs = append(docs, transform.ChunkPages(pages, source, opts)...)
	}
	if len(docs) == 0 {
		log.Print("sync: no PDF content found to ingest")
		return 0, nil
	}

	if err := s.store.Add(ctx, docs); err != nil {
		return 0, fmt.Errorf("indexing PDF chunks: %w", err)
	}
	log.Printf("sync: ingested %d chunks tagged %s", len(docs), source)
	return len(docs), nil
}
