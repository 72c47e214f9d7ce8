// Package search orchestrates the interpretation -> enrichment -> composition
// pipeline, both as a single-shot search and as turns of a persisted
// conversation.
package search

import (
	"context"
	"log"

	"contact-scout/internal/llm"
	"contact-scout/internal/storage"
	"contact-scout/internal/usage"
)

// Interpreter turns free text into structured target profiles.
type Interpreter interface {
	InterpretQuery(ctx context.Context, query string, history []llm.Turn) (*llm.InterpretationResult, error)
}

// Enricher resolves target profiles into normalized contacts. It degrades
// rather than fails, so it returns no error.
type Enricher interface {
	FindContacts(ctx context.Context, interp *llm.InterpretationResult) []storage.Contact
}

// Store is the persistence collaborator slice the pipeline needs.
// *storage.DB satisfies it.
type Store interface {
	CreateConversation(ctx context.Context, conv *storage.Conversation) error
	GetConversation(ctx context.Context, userID, conversationID string) (*storage.Conversation, error)
	SaveConversationTurn(ctx context.Context, conv *storage.Conversation, contactDelta, followUpDelta int) error
	AppendSearchHistory(ctx context.Context, rec *storage.SearchHistoryRecord) error
}

type Service struct {
	interpreter Interpreter
	enricher    Enricher
	store       Store
	usage       usage.Recorder
}

func NewService(interpreter Interpreter, enricher Enricher, store Store, recorder usage.Recorder) *Service {
	if recorder == nil {
		recorder = usage.NopRecorder{}
	}
	return &Service{
		interpreter: interpreter,
		enricher:    enricher,
		store:       store,
		usage:       recorder,
	}
}

// Result is the single-shot search outcome.
type Result struct {
	Interpretation string            `json:"interpretation"`
	SearchStrategy string            `json:"searchStrategy,omitempty"`
	Summary        string            `json:"summary"`
	Contacts       []storage.Contact `json:"contacts"`
	ResultCount    int               `json:"resultCount"`
}

// RunSearch executes the pipeline once without a transcript. Stage failures
// propagate to the caller as classified errors; there is no conversation to
// absorb them.
func (s *Service) RunSearch(ctx context.Context, userID, query string) (*Result, error) {
	s.usage.Record(ctx, userID)

	interp, err := s.interpreter.InterpretQuery(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	contacts := s.enricher.FindContacts(ctx, interp)
	summary := ComposeSummary(interp, contacts)

	rec := &storage.SearchHistoryRecord{
		UserID:      userID,
		Query:       query,
		ResultCount: len(contacts),
	}
	if err := s.store.AppendSearchHistory(ctx, rec); err != nil {
		// History is a lightweight side record; the search itself succeeded.
		log.Printf("[Search] Failed to append history for user %s: %v", userID, err)
	}

	return &Result{
		Interpretation: interp.Interpretation,
		SearchStrategy: interp.SearchStrategy,
		Summary:        summary,
		Contacts:       contacts,
		ResultCount:    len(contacts),
	}, nil
}
