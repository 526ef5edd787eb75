package transform

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/listings"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

func fullListing() listings.Listing {
	return listings.Listing{
		ID:          primitive.NewObjectID(),
		Title:       "Sunset Villa",
		Description: "A bright villa near the coast",
		Price:       250000,
		Category:    "villa",
		Status:      "available",
		Amenities:   []string{"pool", "garage"},
		Address: listings.Address{
			Street:  "12 Shore Road",
			City:    "Karachi",
			State:   "Sindh",
			Country: "Pakistan",
		},
		Details: listings.Details{
			Bedrooms:  4,
			Bathrooms: 3,
			Area:      3200,
			Parking:   2,
		},
	}
}

func TestListingDocumentIncludesAllPopulatedFields(t *testing.T) {
	l := fullListing()
	doc := ListingDocument(l)

	for _, want := range []string{
		"Sunset Villa",
		"A bright villa near the coast",
		"250000",
		"pool, garage",
		"12 Shore Road, Karachi, Sindh, Pakistan",
		"4 Bedrooms, 3 Bathrooms, 3200 sqft, 2 Parking",
	} {
		if !strings.Contains(doc.Content, want) {
			t.Errorf("document text missing %q:\n%s", want, doc.Content)
		}
	}

	if doc.Metadata.ListingID != l.Hex() {
		t.Errorf("metadata listing id %q does not match listing %q", doc.Metadata.ListingID, l.Hex())
	}
	if doc.Metadata.Source != vectordb.SourcePropertyListing {
		t.Errorf("expected property_listing source, got %q", doc.Metadata.Source)
	}
	if doc.Metadata.Category != "villa" || doc.Metadata.Status != "available" {
		t.Errorf("metadata category/status not carried: %+v", doc.Metadata)
	}
}

func TestListingDocumentOmitsEmptyFields(t *testing.T) {
	l := listings.Listing{
		ID:    primitive.NewObjectID(),
		Title: "Bare Plot",
	}
	doc := ListingDocument(l)

	if !strings.Contains(doc.Content, "Title: Bare Plot") {
		t.Errorf("expected title line, got:\n%s", doc.Content)
	}
	for _, label := range []string{"Description:", "Price:", "Amenities:", "Address:", "Details:"} {
		if strings.Contains(doc.Content, label) {
			t.Errorf("expected %q to be omitted for empty field:\n%s", label, doc.Content)
		}
	}
	if strings.Contains(doc.Content, "None") || strings.Contains(doc.Content, "<nil>") {
		t.Errorf("placeholder literal leaked into document text:\n%s", doc.Content)
	}
}

func TestSplitTextPrefersParagraphBoundaries(t *testing.T) {
	text := strings.Join([]string{
		strings.Repeat("a", 60),
		strings.Repeat("b", 60),
		strings.Repeat("c", 60),
	}, "\n\n")

	chunks := SplitText(text, SplitOptions{Size: 130})
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d: %q", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0], "\n\n") {
		t.Errorf("expected first chunk to pack two paragraphs, got %q", chunks[0])
	}
	for _, c := range chunks {
		if len(c) > 130 {
			t.Errorf("chunk exceeds size: %d chars", len(c))
		}
	}
}

func TestSplitTextKeepsOversizedParagraphWholeWithoutOverlap(t *testing.T) {
	long := strings.Repeat("x", 500)
	chunks := SplitText(long, SplitOptions{Size: 100})
	if len(chunks) != 1 {
		t.Fatalf("expected oversized paragraph kept whole, got %d chunks", len(chunks))
	}
	if len(chunks[0]) != 500 {
		t.Errorf("expected 500 chars, got %d", len(chunks[0]))
	}
}

func TestSplitTextHardSplitsWithOverlap(t *testing.T) {
	long := strings.Repeat("x", 250)
	chunks := SplitText(long, SplitOptions{Size: 100, Overlap: 20})
	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 100 {
			t.Errorf("chunk %d exceeds size: %d chars", i, len(c))
		}
	}
	// Consecutive chunks share overlap characters.
	if !strings.HasPrefix(chunks[1], chunks[0][80:]) {
		t.Error("expected 20 character overlap between consecutive chunks")
	}
}

func TestOptionsForSource(t *testing.T) {
	cfg := config.DefaultConfig().Chunking

	tests := []struct {
		source      vectordb.SourceType
		wantSize    int
		wantOverlap int
	}{
		{vectordb.SourceMarketTrends, 2000, 0},
		{vectordb.SourceLegalFAQ, 1500, 0},
		{vectordb.SourcePropertyListing, 1000, 100},
	}
	for _, tt := range tests {
		opts := OptionsForSource(tt.source, cfg)
		if opts.Size != tt.wantSize || opts.Overlap != tt.wantOverlap {
			t.Errorf("%s: got %+v, want size=%d overlap=%d", tt.source, opts, tt.wantSize, tt.wantOverlap)
		}
	}
}

func TestChunkPagesTagsSource(t *testing.T) {
	pages := []string{
		strings.Repeat("market data paragraph. ", 20) + "\n\n" + strings.Repeat("another paragraph. ", 20),
		"short page",
	}
	docs := ChunkPages(pages, vectordb.SourceMarketTrends, SplitOptions{Size: 2000})

	if len(docs) == 0 {
		t.Fatal("expected chunks")
	}
	seen := map[string]bool{}
	for _, d := range docs {
		if d.Metadata.Source != vectordb.SourceMarketTrends {
			t.Errorf("chunk %s not tagged market_trends: %q", d.ID, d.Metadata.Source)
		}
		if len(d.Content) > 2000 && strings.Contains(d.Content, "\n\n") {
			t.Errorf("chunk exceeds size despite available split point")
		}
		if seen[d.ID] {
			t.Errorf("duplicate chunk id %s", d.ID)
		}
		seen[d.ID] = true
	}
}
