package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// TargetProfile is one AI-inferred search criterion set. Ephemeral: it lives
// only within a single pipeline invocation.
type TargetProfile struct {
	Name           string  `json:"name,omitempty"`
	Role           string  `json:"role,omitempty"`
	Company        string  `json:"company,omitempty"`
	Location       string  `json:"location,omitempty"`
	Industry       string  `json:"industry,omitempty"`
	RelevanceScore float64 `json:"relevanceScore,omitempty"`
}

// InterpretationResult is the structured reading of a free-text query.
type InterpretationResult struct {
	Interpretation string          `json:"interpretation"`
	TargetProfiles []TargetProfile `json:"targetProfiles"`
	SearchStrategy string          `json:"searchStrategy"`
}

// Turn is one prior conversation entry supplied as interpretation context.
type Turn struct {
	Role    string
	Content string
}

const (
	historyWindow     = 6   // most recent turns included as context
	historyTruncateAt = 200 // characters kept per turn
	maxTargetProfiles = 3
)

const interpretInstructions = `You are a contact discovery assistant. Convert the user's request into structured search criteria for a professional people search.

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{
  "interpretation": "short noun phrase summarising who the user wants to find",
  "targetProfiles": [
    {
      "name": "",
      "role": "job title or role",
      "company": "company name if mentioned",
      "location": "city or region if mentioned",
      "industry": "industry if mentioned",
      "relevanceScore": 90
    }
  ],
  "searchStrategy": "one sentence on how the profiles were derived"
}

Important:
- Produce 1 to 3 target profiles, most relevant first
- Leave fields you cannot infer as empty strings
- relevanceScore is 0-100
- When the request refines an earlier one, carry earlier criteria forward unless replaced`

// InterpretQuery turns a free-text query (plus optional conversation history)
// into structured target profiles. One attempt; any failure is returned as a
// classified *InterpretationError.
func (s *Service) InterpretQuery(ctx context.Context, query string, history []Turn) (*InterpretationResult, error) {
	if s.provider == ProviderNone {
		return nil, &InterpretationError{Kind: KindProvider, Err: fmt.Errorf("LLM provider not configured")}
	}

	input := query
	if len(history) > 1 {
		input = buildHistoryContext(history) + "\n\nThe user now asks: " + query +
			"\nResolve references to earlier turns: roles, companies, industries and locations carry over unless the new request replaces them."
	}

	response, err := s.Generate(ctx, interpretInstructions, input)
	if err != nil {
		return nil, classifyCallError(err)
	}

	stripped := stripCodeFences(response)

	var result InterpretationResult
	if err := json.Unmarshal([]byte(stripped), &result); err != nil {
		log.Printf("[LLM] Failed to parse interpretation response: %v", err)
		log.Printf("[LLM] Response was: %.300s", stripped)
		return nil, &InterpretationError{Kind: KindParse, Err: err}
	}

	if len(result.TargetProfiles) == 0 {
		return nil, &InterpretationError{Kind: KindParse, Err: fmt.Errorf("no target profiles in response")}
	}
	if len(result.TargetProfiles) > maxTargetProfiles {
		result.TargetProfiles = result.TargetProfiles[:maxTargetProfiles]
	}

	return &result, nil
}

// buildHistoryContext renders a bounded window over prior turns: the most
// recent 6, each truncated to 200 characters.
func buildHistoryContext(history []Turn) string {
	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}

	var builder strings.Builder
	builder.WriteString("Conversation so far:")
	for _, turn := range history[start:] {
		content := turn.Content
		if runes := []rune(content); len(runes) > historyTruncateAt {
			content = string(runes[:historyTruncateAt])
		}
		builder.WriteString(fmt.Sprintf("\n%s: %s", turn.Role, content))
	}
	return builder.String()
}

// stripCodeFences removes markdown code-fence wrapping some models add
// despite instructions.
func stripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
