// Package fireworks implements identity field extraction against the
// Fireworks AI OpenAI-compatible chat completions API.
package fireworks

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/subha-ilamathy/kyc-document-extraction/internal/config"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/domain"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/extractor"
	"github.com/subha-ilamathy/kyc-document-extraction/internal/port"
)

const (
	defaultBaseURL = "https://api.fireworks.ai/inference/v1"
	providerName   = "fireworks"
)

// Extractor implements port.FieldExtractor using a Fireworks vision model
// with schema-constrained JSON output.
type Extractor struct {
	apiKey       string
	defaultModel string
	endpoint     string
	client       *http.Client
}

// NewExtractor creates a Fireworks-based field extractor. The API key is
// required; its absence is a fatal configuration error at startup.
func NewExtractor(cfg *config.ExtractorConfig) (*Extractor, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return newExtractor(cfg, baseURL+"/chat/completions")
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API
// endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ExtractorConfig, endpoint string) (*Extractor, error) {
	return newExtractor(cfg, endpoint)
}

func newExtractor(cfg *config.ExtractorConfig, endpoint string) (*Extractor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("extractor API key not configured (set KYC_EXTRACTOR_API_KEY)")
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:       cfg.APIKey,
		defaultModel: cfg.DefaultModel,
		endpoint:     endpoint,
		client:       &http.Client{Timeout: timeout},
	}, nil
}

func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (*port.ExtractOutput, error) {
	model := input.Model
	if model == "" {
		model = e.defaultModel
	}
	prompt := extractor.BuildPrompt(input.DocumentType)

	contentType := input.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}
	encoded := base64.StdEncoding.EncodeToString(input.FileBytes)
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, encoded)

	reqBody := map[string]interface{}{
		"model": model,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "text", "text": prompt},
					{
						"type":      "image_url",
						"image_url": map[string]interface{}{"url": dataURI},
					},
				},
			},
		},
		"response_format": map[string]interface{}{
			"type": "json_schema",
			"json_schema": map[string]interface{}{
				"name":   "identity_verification",
				"schema": extractor.IdentitySchema(),
			},
		},
		// Lower temperature for more consistent extraction
		"temperature": 0.1,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, extractor.NewError(providerName, fmt.Errorf("marshaling request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, extractor.NewError(providerName, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, extractor.NewError(providerName, fmt.Errorf("calling fireworks API: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, extractor.NewError(providerName, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, extractor.NewError(providerName,
			fmt.Errorf("fireworks API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500)))
	}

	return parseResponse(respBody, model)
}

// apiResponse models the chat completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseResponse(body []byte, model string) (*port.ExtractOutput, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, extractor.NewError(providerName, fmt.Errorf("unmarshaling response: %w", err))
	}

	if len(resp.Choices) == 0 {
		return nil, extractor.NewError(providerName, errors.New("empty response from API: no choices"))
	}

	if resp.Choices[0].FinishReason == "length" {
		return nil, extractor.NewError(providerName,
			errors.New("output truncated (finish_reason: length): response exceeded output token limit"))
	}

	text := resp.Choices[0].Message.Content

	// The schema-constrained contract is still a fallible parse: never
	// trust the model to honor the requested shape.
	var data domain.DocumentData
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, extractor.NewError(providerName,
			fmt.Errorf("parsing model JSON output: %w (raw: %s)", err, truncate(text, 500)))
	}

	return &port.ExtractOutput{
		Data:      &data,
		ModelUsed: model,
	}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
