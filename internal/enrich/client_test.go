package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"contact-scout/internal/llm"
)

func interpWithProfiles(profiles ...llm.TargetProfile) *llm.InterpretationResult {
	return &llm.InterpretationResult{
		Interpretation: "test search",
		TargetProfiles: profiles,
	}
}

func TestFindContacts_NoCredentialSkipsNetwork(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{"people":[]}`))
	}))
	defer server.Close()

	client := NewClient("", server.URL, 10)
	interp := interpWithProfiles(
		llm.TargetProfile{Role: "engineer"},
		llm.TargetProfile{Role: "designer"},
		llm.TargetProfile{Role: "founder"},
	)

	contacts := client.FindContacts(context.Background(), interp)

	if atomic.LoadInt64(&hits) != 0 {
		t.Errorf("expected no network calls without a credential, got %d", hits)
	}
	if len(contacts) != 3 {
		t.Fatalf("expected one placeholder per profile, got %d", len(contacts))
	}
	for i, c := range contacts {
		if len(c.Emails) == 0 || c.Emails[0] == "" {
			t.Errorf("placeholder %d has no email", i)
		}
		if len(c.Phones) == 0 || c.Phones[0] == "" {
			t.Errorf("placeholder %d has no phone", i)
		}
		if c.RelevanceScore != 90 {
			t.Errorf("placeholder %d relevance = %v, want 90", i, c.RelevanceScore)
		}
	}
}

func TestFindContacts_OneSubQueryPerProfile(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("missing provider key header")
		}
		w.Write([]byte(`{"people":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, 10)
	interp := interpWithProfiles(
		llm.TargetProfile{Role: "engineer"},
		llm.TargetProfile{Role: "designer"},
	)

	contacts := client.FindContacts(context.Background(), interp)

	if got := atomic.LoadInt64(&hits); got != 2 {
		t.Errorf("expected 2 sub-queries, got %d", got)
	}
	if contacts == nil {
		t.Error("contacts must never be nil")
	}
	if len(contacts) != 0 {
		t.Errorf("expected zero contacts, got %d", len(contacts))
	}
}

func TestFindContacts_SubQueryPartialFailure(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&hits, 1)
		if n == 1 {
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"people": []map[string]interface{}{
				{"id": "p1", "name": "Ada Lovelace", "title": "Engineer"},
				{"id": "p2", "name": "Grace Hopper", "title": "Engineer"},
				{"id": "p3", "name": "Katherine Johnson", "title": "Engineer"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, 10)
	interp := interpWithProfiles(
		llm.TargetProfile{Role: "engineer", Location: "Berlin"},
		llm.TargetProfile{Role: "engineer", Location: "Hamburg"},
	)

	contacts := client.FindContacts(context.Background(), interp)

	if len(contacts) != 3 {
		t.Fatalf("expected 3 contacts from the surviving sub-query, got %d", len(contacts))
	}
	if contacts[0].Name != "Ada Lovelace" {
		t.Errorf("contact order not preserved: first = %q", contacts[0].Name)
	}
}

func TestFindContacts_AcceptsLegacyContactsArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"people": []map[string]interface{}{
				{"id": "p1", "name": "Ada Lovelace"},
			},
			"contacts": []map[string]interface{}{
				{"id": "c1", "name": "Legacy Record", "organization_name": "Oldco"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, 10)
	contacts := client.FindContacts(context.Background(), interpWithProfiles(llm.TargetProfile{Role: "engineer"}))

	if len(contacts) != 2 {
		t.Fatalf("expected both shapes accepted, got %d contacts", len(contacts))
	}
	if contacts[1].Company != "Oldco" {
		t.Errorf("legacy record not normalized: company = %q", contacts[1].Company)
	}
}

func TestFindContacts_SetupFailureFallsBack(t *testing.T) {
	// An unparsable base URL fails before any sub-query runs.
	client := NewClient("test-key", "://not-a-url", 10)
	interp := interpWithProfiles(
		llm.TargetProfile{Role: "engineer"},
		llm.TargetProfile{Role: "designer"},
	)

	contacts := client.FindContacts(context.Background(), interp)

	if len(contacts) != 2 {
		t.Fatalf("expected one fallback contact per profile, got %d", len(contacts))
	}
	for i, c := range contacts {
		if c.RelevanceScore != 50 {
			t.Errorf("fallback %d relevance = %v, want 50", i, c.RelevanceScore)
		}
		if len(c.Emails) != 0 || len(c.Phones) != 0 {
			t.Errorf("fallback %d should have empty contact channels", i)
		}
	}
}

func TestFindContacts_EmptyInterpretation(t *testing.T) {
	client := NewClient("", "", 10)
	if got := client.FindContacts(context.Background(), nil); got == nil || len(got) != 0 {
		t.Errorf("nil interpretation: got %v, want empty list", got)
	}
	if got := client.FindContacts(context.Background(), interpWithProfiles()); got == nil || len(got) != 0 {
		t.Errorf("no profiles: got %v, want empty list", got)
	}
}
