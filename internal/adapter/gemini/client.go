// Package gemini implements the text-generation collaborator against the
// Google Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/floatchat/ocean-query-service/internal/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client calls the Gemini API and implements pipeline.TextGenerator.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Gemini client.
func NewClient(apiKey, model string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: defaultBaseURL,
		logger:  logger,
	}
}

// Generate sends the FloatChat prompt for a user query and returns the
// model's reply. If the reply embeds a fenced JSON visualization
// descriptor, it is parsed and attached; a malformed descriptor is dropped
// while the text is kept.
func (c *Client) Generate(ctx context.Context, query string) (domain.UpstreamResult, error) {
	reqBody := request{
		Contents: []content{{
			Parts: []part{{Text: buildPrompt(query)}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return domain.UpstreamResult{}, fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.UpstreamResult{}, fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UpstreamResult{}, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return domain.UpstreamResult{}, fmt.Errorf("gemini API error: status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var geminiResp response
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.UpstreamResult{}, fmt.Errorf("decode gemini response: %w", err)
	}
	if geminiResp.Error != nil {
		return domain.UpstreamResult{}, fmt.Errorf("gemini error %d: %s", geminiResp.Error.Code, geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.UpstreamResult{}, fmt.Errorf("gemini returned empty response")
	}

	text := geminiResp.Candidates[0].Content.Parts[0].Text
	visualization, cleaned := parseVisualization(text)
	if !visualization.Empty() {
		c.logger.Debug("model supplied visualization descriptor")
	}

	return domain.UpstreamResult{Text: cleaned, Visualization: visualization}, nil
}

// Gemini API wire types.

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
