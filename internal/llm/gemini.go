package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

func (s *Service) callGemini(ctx context.Context, instructions, input string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cc := &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		cc.HTTPOptions.BaseURL = s.baseURL
	}

	client, err := genai.NewClient(callCtx, cc)
	if err != nil {
		return "", fmt.Errorf("Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(
		callCtx,
		s.model,
		genai.Text(instructions+"\n\n"+input),
		&genai.GenerateContentConfig{
			CandidateCount:   1,
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}
