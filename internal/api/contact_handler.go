package api

import (
	"encoding/json"
	"net/http"

	"contact-scout/internal/auth"
	"contact-scout/internal/storage"
)

// SaveContactRequest carries the contact the user chose to keep.
type SaveContactRequest struct {
	Contact storage.Contact `json:"contact"`
}

// SaveContactHandler persists one contact for the user, keyed by
// (userId, contactId). Saving the same contact twice refreshes it.
// @Summary Save a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body SaveContactRequest true "Contact to save"
// @Success 200 {object} storage.SavedContact
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /contacts [post]
func (a *API) SaveContactHandler(w http.ResponseWriter, r *http.Request) {
	var req SaveContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Contact.ID == "" {
		writeError(w, http.StatusBadRequest, "contact id is required")
		return
	}

	saved, err := a.db.SaveContact(r.Context(), auth.UserID(r.Context()), req.Contact)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// ListSavedContactsHandler returns the user's saved contacts.
// @Summary List saved contacts
// @Tags contacts
// @Produce json
// @Success 200 {array} storage.SavedContact
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /contacts [get]
func (a *API) ListSavedContactsHandler(w http.ResponseWriter, r *http.Request) {
	contacts, err := a.db.ListSavedContacts(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if contacts == nil {
		contacts = []*storage.SavedContact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// DeleteSavedContactHandler removes one saved contact.
// @Summary Delete a saved contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (a *API) DeleteSavedContactHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeleteSavedContact(r.Context(), auth.UserID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
