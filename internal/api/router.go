package api

import (
	"net/http"

	"contact-scout/internal/auth"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Authenticated API surface
	api := http.NewServeMux()

	// Single-shot search
	api.HandleFunc("POST /api/search", a.SearchHandler)

	// Conversations
	api.HandleFunc("POST /api/conversations", a.CreateConversationHandler)
	api.HandleFunc("GET /api/conversations", a.ListConversationsHandler)
	api.HandleFunc("GET /api/conversations/{id}", a.GetConversationHandler)
	api.HandleFunc("DELETE /api/conversations/{id}", a.DeleteConversationHandler)
	api.HandleFunc("POST /api/conversations/{id}/messages", a.SendMessageHandler)
	api.HandleFunc("POST /api/conversations/{id}/archive", a.ArchiveConversationHandler)

	// Search history
	api.HandleFunc("GET /api/history", a.ListHistoryHandler)
	api.HandleFunc("DELETE /api/history", a.ClearHistoryHandler)
	api.HandleFunc("DELETE /api/history/{id}", a.DeleteHistoryItemHandler)

	// Caller identity and usage
	api.HandleFunc("GET /api/me", a.MeHandler)
	api.HandleFunc("GET /api/usage", a.UsageHandler)

	// Saved contacts
	api.HandleFunc("POST /api/contacts", a.SaveContactHandler)
	api.HandleFunc("GET /api/contacts", a.ListSavedContactsHandler)
	api.HandleFunc("DELETE /api/contacts/{id}", a.DeleteSavedContactHandler)

	protected := auth.Middleware(a.verifier, a.db)(a.limiter.Middleware(api))
	mux.Handle("/api/", protected)

	return mux
}
