package api

import (
	"context"
	"net/http"
	"time"

	"contact-scout/internal/auth"
)

// usageCounter is the optional read side of a usage recorder. The no-op
// recorder does not implement it.
type usageCounter interface {
	Count(ctx context.Context, userID string) (int64, error)
}

// UsageResponse reports the caller's search count for the current month.
type UsageResponse struct {
	Month   string `json:"month"`
	Count   int64  `json:"count"`
	Tracked bool   `json:"tracked"`
}

// UsageHandler returns the user's usage for the current month. When usage
// tracking is not configured the count reads as zero and untracked.
// @Summary Current month usage
// @Tags usage
// @Produce json
// @Success 200 {object} UsageResponse
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /usage [get]
func (a *API) UsageHandler(w http.ResponseWriter, r *http.Request) {
	resp := UsageResponse{Month: time.Now().UTC().Format("2006-01")}

	if counter, ok := a.recorder.(usageCounter); ok {
		count, err := counter.Count(r.Context(), auth.UserID(r.Context()))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		resp.Count = count
		resp.Tracked = true
	}

	writeJSON(w, http.StatusOK, resp)
}
