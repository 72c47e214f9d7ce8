package api

import (
	"net/http"

	"contact-scout/internal/auth"
	"contact-scout/internal/storage"
)

// ListHistoryHandler returns the user's search history, newest first.
// @Summary List search history
// @Tags history
// @Produce json
// @Success 200 {array} storage.SearchHistoryRecord
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /history [get]
func (a *API) ListHistoryHandler(w http.ResponseWriter, r *http.Request) {
	records, err := a.history.ListSearchHistory(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []*storage.SearchHistoryRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// DeleteHistoryItemHandler removes one history record. A record owned by a
// different user reads as not found.
// @Summary Delete one history record
// @Tags history
// @Produce json
// @Param id path string true "History record id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /history/{id} [delete]
func (a *API) DeleteHistoryItemHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.history.DeleteSearchHistoryItem(r.Context(), auth.UserID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ClearHistoryHandler removes all of the user's history records.
// @Summary Clear search history
// @Tags history
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /history [delete]
func (a *API) ClearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	deleted, err := a.history.ClearSearchHistory(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
