package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"codescout/providers/contracts"
	contracts2 "codescout/token_management/contracts"
	"github.com/sirupsen/logrus"
)

// OllamaConfig implements the inference gateway against a local Ollama server.
type OllamaConfig struct {
	BaseURL         string
	Model           string
	TokenManagement contracts2.ITokenManagement
	client          *http.Client
}

const (
	defaultBaseURL = "http://localhost:11434"
)

// generateRequest is the body of one generate call. Streaming stays off,
// the endpoint answers with a single JSON object.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse keeps Response as a pointer to tell a missing field
// apart from a present-but-empty answer.
type generateResponse struct {
	Response        *string `json:"response"`
	PromptEvalCount int     `json:"prompt_eval_count"`
	EvalCount       int     `json:"eval_count"`
}

// NewOllamaGateway initializes a new gateway for the generate endpoint.
func NewOllamaGateway(config *OllamaConfig) contracts.IInferenceGateway {
	// Set default BaseURL if empty
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OllamaConfig{
		BaseURL:         strings.TrimRight(baseURL, "/"),
		Model:           config.Model,
		TokenManagement: config.TokenManagement,
		client:          &http.Client{},
	}
}

// Generate sends one synchronous generate call and returns the model text.
// Any failure along the way comes back as error-describing text, never as
// an error value, so callers print it like an ordinary answer.
func (ollamaProvider *OllamaConfig) Generate(ctx context.Context, prompt string) string {
	text, err := ollamaProvider.generate(ctx, prompt)
	if err != nil {
		logrus.Warnf("generate request failed: %v", err)
		return fmt.Sprintf("Error during API request: %v", err)
	}
	return text
}

func (ollamaProvider *OllamaConfig) generate(ctx context.Context, prompt string) (string, error) {
	// Prepare the request body
	reqBody := generateRequest{
		Model:  ollamaProvider.Model,
		Prompt: prompt,
		Stream: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshalling request body: %v", err)
	}

	// Create a new HTTP request
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/api/generate", ollamaProvider.BaseURL), bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := ollamaProvider.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return "", fmt.Errorf("request canceled: %v", err)
		}
		return "", fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status code '%d' - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var response generateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error unmarshalling response: %v", err)
	}

	// Count total tokens usage
	if response.PromptEvalCount > 0 && ollamaProvider.TokenManagement != nil {
		ollamaProvider.TokenManagement.UsedTokens(response.PromptEvalCount, response.EvalCount)
	}

	if response.Response == nil {
		return "No response received", nil
	}

	return *response.Response, nil
}

// IsAvailable probes the server root once. Ollama answers a plain GET on
// its base URL with status 200 when it is up.
func (ollamaProvider *OllamaConfig) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "GET", ollamaProvider.BaseURL, nil)
	if err != nil {
		return false
	}

	resp, err := ollamaProvider.client.Do(req)
	if err != nil {
		logrus.Debugf("availability probe failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
