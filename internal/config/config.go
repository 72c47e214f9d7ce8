package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string // optional; usage counters degrade to no-op without it

	// LLM configuration (query interpretation)
	LLMProvider string // "openai", "groq", "gemini", "ollama", or "none"
	LLMModel    string
	LLMAPIKey   string

	// People-search provider (contact enrichment)
	EnrichAPIKey  string
	EnrichBaseURL string // override for tests/proxies; empty = provider default
	EnrichPerPage int    // page-size hint per sub-query

	// Google OAuth audience for token verification
	GoogleClientID string

	// Per-user request rate limit
	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "openai" // default
	}

	llmModel := os.Getenv("LLM_MODEL")
	if llmModel == "" {
		llmModel = "gpt-4o-mini" // default model
	}

	// Get API key based on provider
	llmAPIKey := ""
	switch llmProvider {
	case "openai":
		llmAPIKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		llmAPIKey = os.Getenv("GROQ_API_KEY")
	case "gemini":
		llmAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	perPage := 10
	if s := os.Getenv("ENRICH_PER_PAGE"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			perPage = v
		}
	}

	rps := 5.0
	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			rps = v
		}
	}
	burst := 10
	if s := os.Getenv("RATE_LIMIT_BURST"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			burst = v
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:           port,
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		LLMProvider:    llmProvider,
		LLMModel:       llmModel,
		LLMAPIKey:      llmAPIKey,
		EnrichAPIKey:   os.Getenv("APOLLO_API_KEY"),
		EnrichBaseURL:  os.Getenv("APOLLO_BASE_URL"),
		EnrichPerPage:  perPage,
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}
}
