package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func staticVerifier() *StaticVerifier {
	return &StaticVerifier{Tokens: map[string]Identity{
		"good-token": {UserID: "user-1", Email: "u1@example.com", Name: "User One"},
	}}
}

func TestMiddleware_InjectsUserID(t *testing.T) {
	var seenUserID string
	handler := Middleware(staticVerifier(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserID(r.Context())
	}))

	req := httptest.NewRequest("GET", "/api/conversations", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seenUserID != "user-1" {
		t.Errorf("UserID in context = %q, want %q", seenUserID, "user-1")
	}
}

func TestMiddleware_RejectsMissingAndBadTokens(t *testing.T) {
	handler := Middleware(staticVerifier(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for unauthenticated requests")
	}))

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer nope"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/search", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestGoogleVerifier_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("id_token") {
		case "valid":
			json.NewEncoder(w).Encode(map[string]string{
				"sub":     "google-sub-1",
				"aud":     "my-client-id",
				"email":   "u@example.com",
				"name":    "U Ser",
				"picture": "https://example.com/p.png",
			})
		case "wrong-aud":
			json.NewEncoder(w).Encode(map[string]string{"sub": "google-sub-2", "aud": "someone-else"})
		default:
			http.Error(w, "invalid token", http.StatusBadRequest)
		}
	}))
	defer server.Close()

	v := NewGoogleVerifier("my-client-id")
	v.SetBaseURL(server.URL)

	t.Run("valid token", func(t *testing.T) {
		id, err := v.Verify(context.Background(), "valid")
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if id.UserID != "google-sub-1" || id.Email != "u@example.com" {
			t.Errorf("identity = %+v", id)
		}
	})

	t.Run("audience mismatch", func(t *testing.T) {
		if _, err := v.Verify(context.Background(), "wrong-aud"); err == nil {
			t.Error("expected audience mismatch error")
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		if _, err := v.Verify(context.Background(), "garbage"); err == nil {
			t.Error("expected error for rejected token")
		}
	})
}
