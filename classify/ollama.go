package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pevans/newspulse/config"
)

type ollamaOptions struct {
	Temperature float32  `json:"temperature"`
	TopK        int32    `json:"top_k"`
	TopP        float32  `json:"top_p"`
	NumPredict  int32    `json:"num_predict"`
	Stop        []string `json:"stop,omitempty"`
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// OllamaGenerator generates text with a local Ollama server. Safety settings
// and candidate count have no Ollama equivalent and are ignored.
type OllamaGenerator struct {
	host       string
	httpClient *http.Client
	model      string
	options    ollamaOptions
}

// NewOllamaGenerator creates a generator for cfg.Model on cfg.OllamaHost. A
// nil httpClient uses http.DefaultClient.
func NewOllamaGenerator(cfg config.ClassifierConfig, httpClient *http.Client) *OllamaGenerator {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OllamaGenerator{
		host:       strings.TrimRight(cfg.OllamaHost, "/"),
		httpClient: httpClient,
		model:      cfg.Model,
		options: ollamaOptions{
			Temperature: cfg.Temperature,
			TopK:        cfg.TopK,
			TopP:        cfg.TopP,
			NumPredict:  cfg.MaxOutputTokens,
			Stop:        cfg.StopSequences,
		},
	}
}

// Generate posts prompt to /api/generate and returns the response text as
// the model wrote it.
func (o *OllamaGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaRequest{
		Model:   o.model,
		Prompt:  prompt,
		Stream:  false,
		Options: o.options,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}

	var parsed ollamaResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("ollama unexpected response: %s", string(raw))
	}

	if strings.TrimSpace(parsed.Response) == "" {
		return "", ErrEmptyResponse
	}
	return parsed.Response, nil
}
