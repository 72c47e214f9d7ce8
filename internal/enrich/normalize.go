package enrich

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"contact-scout/internal/storage"

	"github.com/google/uuid"
)

// defaultRelevance applies when the provider supplies no relevance field.
const defaultRelevance = 90

// Priority order for unwrapping provider objects, per list kind. A
// phone-shaped object inside an email list (or vice versa) is dropped, not
// cross-extracted.
var (
	emailValueKeys = []string{"email", "value"}
	phoneValueKeys = []string{"number", "value", "raw_number"}
)

// NormalizeProfile converts one raw provider profile record into the
// canonical Contact. Pure best-effort mapping: it never fails, every output
// field falls back through an ordered chain of source fields.
func NormalizeProfile(raw map[string]interface{}) storage.Contact {
	firstName := stringField(raw, "first_name")
	lastName := stringField(raw, "last_name")

	name := stringField(raw, "name")
	if name == "" {
		name = joinNonEmpty(" ", firstName, lastName)
	}

	title := firstString(raw, "title", "job_title", "headline")
	company := companyField(raw)
	location := locationField(raw)
	industry := firstString(raw, "industry")

	emails := extractContactValues(raw["emails"], emailValueKeys)
	if len(emails) == 0 {
		if e := stringField(raw, "email"); e != "" {
			emails = []string{e}
		}
	}
	phones := extractContactValues(raw["phone_numbers"], phoneValueKeys)
	if len(phones) == 0 {
		phones = extractContactValues(raw["phones"], phoneValueKeys)
	}
	if emails == nil {
		emails = []string{}
	}
	if phones == nil {
		phones = []string{}
	}

	return storage.Contact{
		ID:              idField(raw),
		Name:            name,
		FirstName:       firstName,
		LastName:        lastName,
		Title:           title,
		Company:         company,
		Location:        location,
		Industry:        industry,
		Emails:          emails,
		Phones:          phones,
		LinkedInURL:     firstString(raw, "linkedin_url", "linkedin"),
		ProfileImageURL: firstString(raw, "photo_url", "profile_picture"),
		RelevanceScore:  relevanceField(raw),
		Summary:         buildSummary(title, company, location, industry),
	}
}

// buildSummary composes the one-line description: title (default
// "Professional"), then "at {company}", "in {location}", "| {industry}",
// omitting empty segments.
func buildSummary(title, company, location, industry string) string {
	if title == "" {
		title = "Professional"
	}
	parts := []string{title}
	if company != "" {
		parts = append(parts, "at "+company)
	}
	if location != "" {
		parts = append(parts, "in "+location)
	}
	if industry != "" {
		parts = append(parts, "| "+industry)
	}
	return strings.Join(parts, " ")
}

// extractContactValues accepts a provider email/phone list whose entries may
// be plain strings or objects, unwrapped via the given keys in priority
// order. Anything else is dropped; source order is preserved.
func extractContactValues(value interface{}, keys []string) []string {
	list, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		switch v := entry.(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, s)
			}
		case map[string]interface{}:
			for _, key := range keys {
				if s := stringField(v, key); s != "" {
					out = append(out, s)
					break
				}
			}
		}
	}
	return out
}

func companyField(raw map[string]interface{}) string {
	if org, ok := raw["organization"].(map[string]interface{}); ok {
		if s := stringField(org, "name"); s != "" {
			return s
		}
	}
	return firstString(raw, "organization_name", "company")
}

// locationField prefers an explicit location string, else joins the
// city/state/country parts with ", ".
func locationField(raw map[string]interface{}) string {
	if s := stringField(raw, "location"); s != "" {
		return s
	}
	city := stringField(raw, "city")
	region := stringField(raw, "state")
	if region == "" {
		region = stringField(raw, "region")
	}
	country := stringField(raw, "country")
	return joinNonEmpty(", ", city, region, country)
}

func idField(raw map[string]interface{}) string {
	switch v := raw["id"].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case float64:
		return strconv.FormatInt(int64(v), 10)
	}
	// No provider id: synthesize one unique within the process run.
	return fmt.Sprintf("contact_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

func relevanceField(raw map[string]interface{}) float64 {
	for _, key := range []string{"relevance_score", "match_score", "score"} {
		switch v := raw[key].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return defaultRelevance
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s := stringField(m, key); s != "" {
			return s
		}
	}
	return ""
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
