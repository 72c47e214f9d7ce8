package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"contact-scout/internal/auth"
	"contact-scout/internal/llm"
	"contact-scout/internal/storage"
	"contact-scout/internal/usage"
)

type fixedCounter struct {
	usage.NopRecorder
	count int64
}

func (f fixedCounter) Count(ctx context.Context, userID string) (int64, error) {
	return f.count, nil
}

func TestUsageHandler(t *testing.T) {
	t.Run("tracked", func(t *testing.T) {
		a := &API{recorder: fixedCounter{count: 7}}
		req := httptest.NewRequest("GET", "/api/usage", nil)
		req = req.WithContext(auth.WithUserID(req.Context(), "user-1"))
		rec := httptest.NewRecorder()
		a.UsageHandler(rec, req)

		var resp UsageResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !resp.Tracked || resp.Count != 7 {
			t.Errorf("resp = %+v, want tracked count 7", resp)
		}
	})

	t.Run("untracked", func(t *testing.T) {
		a := &API{recorder: usage.NopRecorder{}}
		req := httptest.NewRequest("GET", "/api/usage", nil)
		rec := httptest.NewRecorder()
		a.UsageHandler(rec, req)

		var resp UsageResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Tracked || resp.Count != 0 {
			t.Errorf("resp = %+v, want untracked zero count", resp)
		}
	})
}

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"not found", storage.ErrNotFound, 404, "not found"},
		{"wrapped not found", fmt.Errorf("get conversation: %w", storage.ErrNotFound), 404, "not found"},
		{
			"interpretation failure",
			&llm.InterpretationError{Kind: llm.KindTimeout, Err: errors.New("deadline exceeded")},
			500,
			"search failed: interpretation failed (timeout): deadline exceeded",
		},
		{"unknown", errors.New("pq: connection refused"), 500, "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tc.err)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] != tc.wantMsg {
				t.Errorf("error = %q, want %q", body["error"], tc.wantMsg)
			}
		})
	}
}
