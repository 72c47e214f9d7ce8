package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGroq   Provider = "groq"
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
	ProviderNone   Provider = "none"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"
	defaultGroqBaseURL   = "https://api.groq.com"
	defaultOllamaBaseURL = "http://localhost:11434"
)

type Service struct {
	provider Provider
	apiKey   string
	model    string
	baseURL  string // override for tests/proxies; empty = provider default
	effort   string // reasoning effort hint passed to providers that take one
	timeout  time.Duration
}

func NewService(provider, apiKey, model string) *Service {
	return &Service{
		provider: Provider(provider),
		apiKey:   apiKey,
		model:    model,
		effort:   "low",
		timeout:  30 * time.Second,
	}
}

// SetBaseURL overrides the provider endpoint. Useful for proxies and tests.
func (s *Service) SetBaseURL(u string) {
	s.baseURL = strings.TrimSuffix(u, "/")
}

func (s *Service) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Generate sends instructions plus input to the configured LLM and returns
// the raw text response. One attempt, no retries.
func (s *Service) Generate(ctx context.Context, instructions, input string) (string, error) {
	switch s.provider {
	case ProviderOpenAI:
		return s.callOpenAI(ctx, instructions, input)
	case ProviderGroq:
		return s.callGroq(ctx, instructions, input)
	case ProviderGemini:
		return s.callGemini(ctx, instructions, input)
	case ProviderOllama:
		return s.callOllama(ctx, instructions, input)
	case ProviderNone:
		return "", fmt.Errorf("LLM provider not configured")
	default:
		return "", fmt.Errorf("unknown provider: %s", s.provider)
	}
}

// callOpenAI uses the Responses API. The output can arrive split across
// several message items and text segments; they are concatenated in order.
func (s *Service) callOpenAI(ctx context.Context, instructions, input string) (string, error) {
	reqBody := map[string]interface{}{
		"model":        s.model,
		"instructions": instructions,
		"input":        input,
	}
	if s.effort != "" {
		reqBody["reasoning"] = map[string]string{"effort": s.effort}
	}

	jsonData, _ := json.Marshal(reqBody)

	base := s.baseURL
	if base == "" {
		base = defaultOpenAIBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, "POST", base+"/v1/responses", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error: %d", resp.StatusCode)
	}

	var result struct {
		Output []struct {
			Type    string `json:"type"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("OpenAI error: %s", result.Error.Message)
	}

	var builder strings.Builder
	for _, item := range result.Output {
		for _, segment := range item.Content {
			if segment.Type == "" || segment.Type == "output_text" {
				builder.WriteString(segment.Text)
			}
		}
	}
	if builder.Len() == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return builder.String(), nil
}

func (s *Service) callGroq(ctx context.Context, instructions, input string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": instructions,
			},
			{
				"role":    "user",
				"content": input,
			},
		},
		"temperature": 0.1,
		"response_format": map[string]string{
			"type": "json_object",
		},
	}

	jsonData, _ := json.Marshal(reqBody)

	base := s.baseURL
	if base == "" {
		base = defaultGroqBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, "POST", base+"/openai/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Groq API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Groq API error: %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("Groq error: %s", result.Error.Message)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from Groq")
	}

	return result.Choices[0].Message.Content, nil
}

func (s *Service) callOllama(ctx context.Context, instructions, input string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  s.model,
		"prompt": instructions + "\n\n" + input,
		"stream": false,
		"format": "json",
	}

	jsonData, _ := json.Marshal(reqBody)

	base := s.baseURL
	if base == "" {
		base = defaultOllamaBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, "POST", base+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: s.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("Ollama connection failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("[LLM] Failed to decode Ollama response: %v", err)
		return "", err
	}

	if result.Error != "" {
		return "", fmt.Errorf("Ollama error: %s", result.Error)
	}

	return result.Response, nil
}
