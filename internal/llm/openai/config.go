package openai

import (
	"log/slog"
	"net/http"
	"time"
)

// Config for the vision-model client. The API key lives here and is
// handed over at construction; there is no process-wide client state.
type Config struct {
	APIKey      string        // bearer token for the chat-completions endpoint
	BaseURL     string        // default https://integrate.api.nvidia.com/v1
	Model       string        // vision-capable chat model
	Temperature float32       // 0..2
	TopP        float32       // nucleus sampling, default 1.0
	MaxTokens   int           // reply token limit
	Timeout     time.Duration // single-shot request timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://integrate.api.nvidia.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "mistralai/mistral-large-3-675b-instruct-2512"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.TopP <= 0 {
		cfg.TopP = 1.0
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 2048
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
