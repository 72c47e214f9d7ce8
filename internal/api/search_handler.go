package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"contact-scout/internal/auth"
)

// SearchRequest is the single-shot search payload.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchHandler runs the full interpretation -> enrichment -> composition
// pipeline once, without a conversation transcript.
// @Summary Single-shot contact search
// @Description Interpret a natural-language query, enrich the derived target profiles, and return normalized contacts
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search query"
// @Success 200 {object} search.Result
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /search [post]
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query cannot be empty")
		return
	}

	userID := auth.UserID(r.Context())
	start := time.Now()

	result, err := a.search.RunSearch(r.Context(), userID, req.Query)
	if err != nil {
		log.Printf("[API] Search failed for user %s: %v", userID, err)
		writeServiceError(w, err)
		return
	}

	log.Printf("[API] Search for user %s returned %d contact(s) in %v", userID, result.ResultCount, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}
