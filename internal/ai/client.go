package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
)

var (
	ErrNoAPIKey        = errors.New("GEMINI_API_KEY environment variable not set")
	ErrAPIRequest      = errors.New("API request failed")
	ErrInvalidResponse = errors.New("invalid API response")
)

// Client handles communication with the generative language API. Both calls
// are single-shot: no retry, no streaming, no rate limiting. The HTTP
// timeout bounds how long a caller can be suspended.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new AI client for the given model.
// Returns an error if GEMINI_API_KEY is not set, so callers can short-circuit
// before ever issuing a request.
func NewClient(model string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Enrichment is the AI-suggested metadata for a bookmark URL.
type Enrichment struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Enrich asks the model for a short title and one-sentence description for
// a URL. The model is asked for bare JSON, but replies wrapped in markdown
// code fences are tolerated. Either field may come back empty; callers
// apply whatever they got.
func (c *Client) Enrich(url string) (*Enrichment, error) {
	prompt := fmt.Sprintf(`Suggest bookmark metadata for this URL.

URL: %s

Reply with JSON only, no markdown code fences:
{"title": "a short title (under 10 words)", "description": "one sentence describing the page"}`, url)

	text, err := c.generate(prompt, "")
	if err != nil {
		return nil, err
	}

	var result Enrichment
	if err := json.Unmarshal([]byte(StripFences(text)), &result); err != nil {
		return nil, fmt.Errorf("unmarshal enrichment: %w", err)
	}
	return &result, nil
}

// Ask sends the serialized bookmark collection plus a user question and
// returns the model's reply. The full context is sent on every call; there
// is no truncation for large collections.
func (c *Client) Ask(context, question string) (string, error) {
	system := "You are the Oracle, an assistant that answers questions about the user's bookmark collection. " +
		"Answer using only the collection below. Be concise.\n\n" + context

	return c.generate(question, system)
}

// generate issues one generateContent call and extracts the reply text.
func (c *Client) generate(prompt, system string) (string, error) {
	reqBody := apiRequest{
		Contents: []apiContent{
			{Parts: []apiPart{{Text: prompt}}},
		},
	}
	if system != "" {
		reqBody.SystemInstruction = &apiContent{Parts: []apiPart{{Text: system}}}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPIRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrAPIRequest, resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	// Reply text lives at candidates[0].content.parts[0].text
	if len(apiResp.Candidates) == 0 ||
		len(apiResp.Candidates[0].Content.Parts) == 0 ||
		apiResp.Candidates[0].Content.Parts[0].Text == "" {
		return "", ErrInvalidResponse
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

// StripFences removes a wrapping markdown code fence from a model reply,
// e.g. "```json\n{...}\n```" becomes "{...}".
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
