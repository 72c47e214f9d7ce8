package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"contact-scout/internal/auth"
	"contact-scout/internal/config"
	"contact-scout/internal/enrich"
	"contact-scout/internal/llm"
	"contact-scout/internal/search"
	"contact-scout/internal/storage"
	"contact-scout/internal/usage"
)

// historyStore is the persistence slice behind the history endpoints.
// *storage.DB satisfies it.
type historyStore interface {
	ListSearchHistory(ctx context.Context, userID string) ([]*storage.SearchHistoryRecord, error)
	DeleteSearchHistoryItem(ctx context.Context, userID, recordID string) error
	ClearSearchHistory(ctx context.Context, userID string) (int64, error)
}

type API struct {
	db       *storage.DB
	search   *search.Service
	verifier auth.Verifier
	limiter  *rateLimiter
	recorder usage.Recorder
	history  historyStore
}

func NewAPI(cfg *config.Config, db *storage.DB, recorder usage.Recorder) *API {
	llmSvc := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	enricher := enrich.NewClient(cfg.EnrichAPIKey, cfg.EnrichBaseURL, cfg.EnrichPerPage)

	return &API{
		db:       db,
		search:   search.NewService(llmSvc, enricher, db, recorder),
		verifier: auth.NewGoogleVerifier(cfg.GoogleClientID),
		limiter:  newRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		recorder: recorder,
		history:  db,
	}
}

// SetVerifier swaps the token verifier. Used by tests and development setups.
func (a *API) SetVerifier(v auth.Verifier) {
	a.verifier = v
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps core errors onto HTTP statuses. Cross-tenant access
// surfaces as plain not-found.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	var ie *llm.InterpretationError
	if errors.As(err, &ie) {
		writeError(w, http.StatusInternalServerError, "search failed: "+ie.Error())
		return
	}
	log.Printf("[API] Internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
