package search

import (
	"fmt"

	"contact-scout/internal/llm"
	"contact-scout/internal/storage"
)

// ComposeSummary turns the pipeline outcome into a one-line user-facing
// message. Zero results is a valid outcome, not an error.
func ComposeSummary(interp *llm.InterpretationResult, contacts []storage.Contact) string {
	if len(contacts) == 0 {
		return fmt.Sprintf("I looked for %s but didn't find any matching contacts. Try refining the role, company, or location and I'll search again.",
			interp.Interpretation)
	}

	noun := "professionals"
	if len(contacts) == 1 {
		noun = "professional"
	}
	return fmt.Sprintf("I found %d %s matching %s.", len(contacts), noun, interp.Interpretation)
}

// SuggestActions returns the next-step prompts attached to an assistant turn.
func SuggestActions(hasContacts bool) []string {
	if hasContacts {
		return []string{
			"Send a follow-up question",
			"Save these contacts",
			"Refine the search",
			"Export results",
		}
	}
	return []string{
		"Try a different search",
		"Broaden your criteria",
	}
}
