package transform

import (
	"strings"

	"github.com/ahmad2493/real-estate-platform/internal/config"
	"github.com/ahmad2493/real-estate-platform/internal/vectordb"
)

// SplitOptions controls separator-based text splitting.
type SplitOptions struct {
	// Size is the target maximum chunk length in characters.
	Size int
	// Overlap is carried between pieces when a single paragraph has to be
	// hard-split because it exceeds Size. Zero disables hard splitting:
	// oversized paragraphs are kept whole.
	Overlap int
}

// OptionsForSource returns the splitting options for a declared source type.
// Market trends and legal FAQ documents are paragraph-structured, so they
// use larger chunks split only at blank lines; everything else falls back to
// smaller chunks with overlap.
func OptionsForSource(source vectordb.SourceType, cfg config.ChunkingConfig) SplitOptions {
	switch source {
	case vectordb.SourceMarketTrends:
		return SplitOptions{Size: cfg.MarketTrendsSize}
	case vectordb.SourceLegalFAQ:
		return SplitOptions{Size: cfg.LegalFAQSize}
	default:
		return SplitOptions{Size: cfg.DefaultSize, Overlap: cfg.DefaultOverlap}
	}
}

// SplitText splits text into chunks of at most opts.Size characters,
// preferring double-newline boundaries. Paragraphs longer than Size are kept
// whole when Overlap is zero, otherwise they are hard-split with Overlap
// characters carried between pieces.
func SplitText(text string, opts SplitOptions) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if opts.Size <= 0 || len(text) <= opts.Size {
		return []string{text}
	}

	var chunks []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n\n"))
			current = nil
			currentLen = 0
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len(para) > opts.Size {
			flush()
			if opts.Overlap > 0 {
				chunks = append(chunks, hardSplit(para, opts.Size, opts.Overlap)...)
			} else {
				// No split point within range; the oversized
				// paragraph stays whole.
				chunks = append(chunks, para)
			}
			continue
		}

		sep := 0
		if currentLen > 0 {
			sep = 2 // joining "\n\n"
		}
		if currentLen+sep+len(para) > opts.Size {
			flush()
		}
		current = append(current, para)
		currentLen += sep + len(para)
	}
	flush()

	return chunks
}

// hardSplit cuts s into size-length pieces, stepping back overlap characters
// between consecutive pieces.
func hardSplit(s string, size, overlap int) []string {
	step := size - overlap
	if step <= 0 {
		step = size
	}

	var out []string
	for start := 0; start < len(s); start += step {
		end := start + size
		if end >= len(s) {
			out = append(out, s[start:])
			break
		}
		out = append(out, s[start:end])
	}
	return out
}
