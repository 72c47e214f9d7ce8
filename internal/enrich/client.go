package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"contact-scout/internal/llm"
	"contact-scout/internal/storage"
	pkghttp "contact-scout/pkg/http"
)

const (
	defaultBaseURL  = "https://api.apollo.io"
	searchPath      = "/v1/mixed_people/search"
	subQueryTimeout = 30 * time.Second
)

// Client queries the people-search provider with structured criteria and
// normalizes the results. It degrades to synthetic data instead of failing.
type Client struct {
	apiKey  string
	baseURL string
	perPage int
	http    *pkghttp.Client
}

func NewClient(apiKey, baseURL string, perPage int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if perPage <= 0 {
		perPage = 10
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		perPage: perPage,
		http:    pkghttp.NewClient(subQueryTimeout),
	}
}

// FindContacts issues one provider sub-query per target profile, in profile
// order, and returns the normalized results. It never fails outright: with no
// credential configured it returns placeholders without touching the network,
// and a setup-level failure falls back to synthetic contacts built directly
// (no re-entry into the search path).
func (c *Client) FindContacts(ctx context.Context, interp *llm.InterpretationResult) []storage.Contact {
	if interp == nil || len(interp.TargetProfiles) == 0 {
		return []storage.Contact{}
	}

	if c.apiKey == "" {
		log.Printf("[Enrich] No provider credential configured, returning %d placeholder contact(s)", len(interp.TargetProfiles))
		return placeholderContacts(interp.TargetProfiles)
	}

	contacts, err := c.searchAll(ctx, interp.TargetProfiles)
	if err != nil {
		log.Printf("[Enrich] Provider search setup failed: %v, falling back to synthetic contacts", err)
		return fallbackContacts(interp.TargetProfiles)
	}
	return contacts
}

// searchAll runs the per-profile sub-queries. A sub-query failure is logged
// and skipped; only setup-level problems surface as an error.
func (c *Client) searchAll(ctx context.Context, profiles []llm.TargetProfile) ([]storage.Contact, error) {
	endpoint, err := url.JoinPath(c.baseURL, searchPath)
	if err != nil {
		return nil, fmt.Errorf("provider endpoint: %w", err)
	}

	contacts := make([]storage.Contact, 0)
	for i, profile := range profiles {
		raws, err := c.searchPeople(ctx, endpoint, profile)
		if err != nil {
			log.Printf("[Enrich] Sub-query %d/%d failed: %v", i+1, len(profiles), err)
			continue
		}
		for _, raw := range raws {
			contacts = append(contacts, NormalizeProfile(raw))
		}
	}
	return contacts, nil
}

// searchPeople issues one structured sub-query. Criteria absent from the
// profile are omitted from the request. Both the current "people" and the
// legacy "contacts" response arrays are accepted.
func (c *Client) searchPeople(ctx context.Context, endpoint string, profile llm.TargetProfile) ([]map[string]interface{}, error) {
	body := map[string]interface{}{
		"per_page": c.perPage,
	}
	if profile.Company != "" {
		body["q_organization_name"] = profile.Company
	}
	if profile.Role != "" {
		body["person_titles"] = []string{profile.Role}
	}
	if profile.Location != "" {
		body["person_locations"] = []string{profile.Location}
	}

	resp, err := c.http.PostJSON(ctx, endpoint, map[string]string{"X-Api-Key": c.apiKey}, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var result struct {
		People   []map[string]interface{} `json:"people"`
		Contacts []map[string]interface{} `json:"contacts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}

	return append(result.People, result.Contacts...), nil
}
