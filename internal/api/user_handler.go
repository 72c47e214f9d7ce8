package api

import (
	"net/http"

	"contact-scout/internal/auth"
)

// MeHandler returns the authenticated user's profile record.
// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} storage.User
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /me [get]
func (a *API) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := a.db.GetUser(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
