package sqltutor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyQuery is returned by Ask for empty or whitespace-only input,
// before any network call is made.
var ErrEmptyQuery = errors.New("sqltutor: query is empty")

// ErrServiceFailed is the single error every transport failure,
// non-success status, and undecodable response collapses into. Callers
// show one generic message for it.
var ErrServiceFailed = errors.New("sqltutor: could not reach the tutor service")

// fallbackAnswer is substituted when the service response carries no
// answer field.
const fallbackAnswer = "No answer received."

// Client is the network half of a question box: it submits a query to
// the tutor service and returns the markdown answer. The base URL and
// HTTP client are injected so callers control transport policy.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the tutor service at baseURL. A nil
// httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Ask submits the query and returns the raw markdown answer.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	body, err := json.Marshal(queryRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("sqltutor: failed to encode query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("sqltutor: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", ErrServiceFailed
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", ErrServiceFailed
	}
	var qr queryResponse
	if err := json.NewDecoder(res.Body).Decode(&qr); err != nil {
		return "", ErrServiceFailed
	}
	if qr.Answer == "" {
		return fallbackAnswer, nil
	}
	return qr.Answer, nil
}

// AskHTML submits the query and converts the answer to HTML for
// direct insertion into a display surface. The markup is not
// sanitized; see MarkdownToHTML.
func (c *Client) AskHTML(ctx context.Context, query string) (string, error) {
	answer, err := c.Ask(ctx, query)
	if err != nil {
		return "", err
	}
	return MarkdownToHTML(answer), nil
}
