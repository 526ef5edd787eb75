package rag

import (
	"context"
	"fmt"
	"log"
)

// LeaseFlow handles queries classified as lease generation. Implemented by
// the lease package's conversational flow; the pipeline only needs the
// delegation point.
type LeaseFlow interface {
	Respond(ctx context.Context, query string, history []Message, user User) (string, error)
}

// Pipeline wires classification, retrieval, and augmentation into the single
// classify -> retrieve -> answer flow the API exposes.
type Pipeline struct {
	classifier *Classifier
	retriever  *Retriever
	augmenter  *Augmenter
	leaseFlow  LeaseFlow
}

// NewPipeline assembles a pipeline. leaseFlow may be nil, in which case
// lease-generation queries are answered from (empty) context like any other
// non-retrievable intent.
func NewPipeline(classifier *Classifier, retriever *Retriever, augmenter *Augmenter, leaseFlow LeaseFlow) *Pipeline {
	return &Pipeline{
		classifier: classifier,
		retriever:  retriever,
		augmenter:  augmenter,
		leaseFlow:  leaseFlow,
	}
}

// Result is the outcome of one pipeline run.
type Result struct {
	Intent Intent `json:"category"`
	Answer string `json:"answer"`
}

// Query classifies the query, retrieves supporting documents for the intent,
// and produces a grounded answer. Lease-generation intent is delegated to
// the lease flow instead of being answered from retrieved context.
func (p *Pipeline) Query(ctx context.Context, query string, history []Message, user User) (*Result, error) {
	intent, err := p.classifier.Classify(ctx, query)
	if err != nil {
		return nil, err
	}

	if intent == IntentLeaseGeneration && p.leaseFlow != nil {
		answer, err := p.leaseFlow.Respond(ctx, query, history, user)
		if err != nil {
			return nil, fmt.Errorf("lease flow: %w", err)
		}
		return &Result{Intent: intent, Answer: answer}, nil
	}

	docs, err := p.retriever.Retrieve(ctx, query, intent)
	if err != nil {
		return nil, err
	}
	log.Printf("rag: query classified as %s, %d documents retrieved", intent, len(docs))

	answer, err := p.augmenter.Answer(ctx, query, docs, history)
	if err != nil {
		return nil, err
	}
	return &Result{Intent: intent, Answer: answer}, nil
}
