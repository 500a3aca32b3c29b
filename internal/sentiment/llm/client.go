// Package llm is a minimal client for the generative-language service used
// to fetch the macro-sentiment summary text.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	dErrors "centseek/pkg/domain-errors"
)

// Client calls the generateContent endpoint of a Gemini-compatible service.
type Client struct {
	apiKey     string
	endpoint   string
	model      string
	httpClient *http.Client
}

type Option func(*Client)

// WithEndpoint overrides the service base URL (tests point this at httptest).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient builds a client. An empty API key is allowed; calls will fail
// with a credential diagnostic, which the sentiment chain absorbs.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: "https://generativelanguage.googleapis.com",
		model:    "gemini-2.0-flash",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends the prompt and returns the generated text. All
// failure modes (missing credential, transport, auth/quota, empty response)
// come back as CodeExternalService so the caller's fallback handling stays
// uniform. The context bounds the call; a deadline is treated like any other
// fetch failure by the chain.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", dErrors.New(dErrors.CodeExternalService, "no API key discovered")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeExternalService, "encode request")
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeExternalService, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeExternalService, "call language model")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", dErrors.Newf(dErrors.CodeExternalService,
			"language model returned status %d: %s", resp.StatusCode, string(detail))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeExternalService, "decode response")
	}

	text := firstText(decoded)
	if strings.TrimSpace(text) == "" {
		return "", dErrors.New(dErrors.CodeExternalService, "language model returned an empty response")
	}
	return text, nil
}

func firstText(resp generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}
