package booklooker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"booq/internal/ports"
)

// DefaultBaseURL is the Booklooker REST API root
const DefaultBaseURL = "https://api.booklooker.de/2.0"

const statusOK = "OK"

// ErrRejected is returned when the API answers with a non-OK status
var ErrRejected = errors.New("request rejected by booklooker")

// Client talks to the Booklooker REST API 2.0
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// envelope is the JSON wrapper around every API response
type envelope struct {
	Status      string `json:"status"`
	ReturnValue string `json:"returnValue"`
}

// NewClient creates a new Booklooker client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

var _ ports.CatalogClient = (*Client)(nil)

// Authenticate exchanges the API key for a session token
func (c *Client) Authenticate(ctx context.Context, apiKey string) (string, error) {
	q := url.Values{"apiKey": {apiKey}}
	token, err := c.call(ctx, http.MethodPost, "/authenticate", q)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("authenticate: %w: empty token", ErrRejected)
	}
	return token, nil
}

// ListActiveKeys returns the order numbers of all active articles
func (c *Client) ListActiveKeys(ctx context.Context, token string) ([]string, error) {
	lines, err := c.ListField(ctx, token, ports.FieldQuery{Field: "orderNo"})
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			keys = append(keys, l)
		}
	}
	return keys, nil
}

// ListField returns the article list for one field, one line per article.
// The text is trimmed as a whole; interior blank lines are preserved.
func (c *Client) ListField(ctx context.Context, token string, query ports.FieldQuery) ([]string, error) {
	q := url.Values{
		"token": {token},
		"field": {query.Field},
	}
	if query.ShowPrice {
		q.Set("showPrice", "1")
	}

	body, err := c.call(ctx, http.MethodGet, "/article_list", q)
	if err != nil {
		return nil, fmt.Errorf("article_list %s: %w", query.Field, err)
	}
	return SplitLines(body), nil
}

// SplitLines splits a returnValue into lines after trimming the whole text
func SplitLines(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (c *Client) call(ctx context.Context, method, path string, q url.Values) (string, error) {
	endpoint := c.BaseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if env.Status != statusOK {
		return "", fmt.Errorf("%w: %s", ErrRejected, env.ReturnValue)
	}
	return env.ReturnValue, nil
}
