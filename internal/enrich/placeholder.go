package enrich

import (
	"fmt"

	"contact-scout/internal/llm"
	"contact-scout/internal/storage"
)

// fallbackRelevance marks contacts fabricated after a provider failure,
// distinguishing "no data available" from "mocked for missing credentials".
const fallbackRelevance = 50

// placeholderContacts fabricates one contact per target profile when no
// provider credential is configured. Identities are deterministic and the
// contact channels are derived from the profile index.
func placeholderContacts(profiles []llm.TargetProfile) []storage.Contact {
	out := make([]storage.Contact, 0, len(profiles))
	for i, profile := range profiles {
		n := i + 1
		title := profile.Role
		if title == "" {
			title = "Professional"
		}
		relevance := profile.RelevanceScore
		if relevance <= 0 {
			relevance = defaultRelevance
		}
		out = append(out, storage.Contact{
			ID:             fmt.Sprintf("placeholder_%d", n),
			Name:           fmt.Sprintf("Sample Contact %d", n),
			Title:          title,
			Company:        profile.Company,
			Location:       profile.Location,
			Industry:       profile.Industry,
			Emails:         []string{fmt.Sprintf("contact%d@example.com", n)},
			Phones:         []string{fmt.Sprintf("+1-555-010%d", n)},
			LinkedInURL:    fmt.Sprintf("https://www.linkedin.com/in/sample-contact-%d", n),
			RelevanceScore: relevance,
			Summary:        buildSummary(title, profile.Company, profile.Location, profile.Industry),
		})
	}
	return out
}

// fallbackContacts fabricates one contact per target profile after a
// setup-level provider failure. Contact channels stay empty so the records
// read as unavailable rather than mocked.
func fallbackContacts(profiles []llm.TargetProfile) []storage.Contact {
	out := make([]storage.Contact, 0, len(profiles))
	for i, profile := range profiles {
		n := i + 1
		title := profile.Role
		if title == "" {
			title = "Professional"
		}
		out = append(out, storage.Contact{
			ID:             fmt.Sprintf("fallback_%d", n),
			Name:           fmt.Sprintf("Example Contact %d", n),
			Title:          title,
			Company:        profile.Company,
			Location:       profile.Location,
			Industry:       profile.Industry,
			Emails:         []string{},
			Phones:         []string{},
			RelevanceScore: fallbackRelevance,
			Summary:        buildSummary(title, profile.Company, profile.Location, profile.Industry),
		})
	}
	return out
}
