package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"suggestd/pkg/types"
)

const (
	// maxContextWords bounds the prompt; older words are dropped first since
	// recent context matters most for a short continuation.
	maxContextWords = 512
	// requestTimeout bounds the outbound completions call.
	requestTimeout = 30 * time.Second
	// completionTokens is the fixed short token budget per continuation.
	completionTokens = 5
)

// stopSequences end continuations at a natural sentence/clause boundary.
var stopSequences = []string{"\n", ".", "!", "?", ";", ":", ","}

// Client fetches short continuations from a remote completions endpoint,
// with an exact-match cache and basic input hygiene in front of it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	zlog       *zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithCacheSize caps the completion cache at max entries.
func WithCacheSize(max int) Option {
	return func(c *Client) { c.cache = NewCache(max) }
}

// WithLogger installs a structured logger. If unset, failures fall back to
// log.Printf.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.zlog = &l }
}

// WithHTTPClient replaces the underlying HTTP client. The caller owns the
// timeout configuration in that case.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a Client talking to baseURL (e.g. "http://localhost:8000").
func New(baseURL string, opts ...Option) *Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:    100,
		IdleConnTimeout: 90 * time.Second,
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Transport: tr, Timeout: requestTimeout},
		cache:      NewCache(DefaultCacheSize),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// completionRequest is the payload for POST /v1/completions.
// top_k is not standard OpenAI but vLLM and llama.cpp servers accept it;
// servers that do not will safely ignore the field.
type completionRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature float64  `json:"temperature"`
	TopP        float64  `json:"top_p"`
	TopK        int      `json:"top_k"`
	N           int      `json:"n"`
	Stop        []string `json:"stop"`
}

type completionChoice struct {
	Text string `json:"text"`
}

type completionResponse struct {
	Choices []completionChoice `json:"choices"`
}

// GetCompletion returns up to maxSuggestions continuations of text.
//
// All failures (backend error status, transport error, timeout, bad JSON)
// degrade to an empty result with zero latency; callers never see an error.
// Empty or whitespace-only input short-circuits without a network call, and
// cache hits are free (no timer starts).
func (c *Client) GetCompletion(ctx context.Context, text string, maxSuggestions int) types.CompletionResult {
	if strings.TrimSpace(text) == "" {
		return types.CompletionResult{Completions: []string{}, LatencyMS: 0}
	}
	if maxSuggestions < 1 {
		maxSuggestions = 1
	}

	cleanText := Normalize(text)

	cacheKey := strings.ToLower(cleanText)
	if cached, ok := c.cache.Get(cacheKey); ok {
		cacheHits.Inc()
		return types.CompletionResult{Completions: cached, LatencyMS: 0}
	}
	cacheMisses.Inc()

	// Bound the prompt to the trailing context.
	if words := strings.Fields(cleanText); len(words) > maxContextWords {
		cleanText = strings.Join(words[len(words)-maxContextWords:], " ")
	}

	start := time.Now()
	completions, err := c.fetch(ctx, cleanText, maxSuggestions)
	if err != nil {
		backendFailures.Inc()
		if c.zlog != nil {
			c.zlog.Error().Err(err).Str("backend", c.baseURL).Msg("completion request failed")
		} else {
			log.Printf("completion request failed: %v", err)
		}
		return types.CompletionResult{Completions: []string{}, LatencyMS: 0}
	}
	latency := time.Since(start)
	backendRequestDuration.Observe(latency.Seconds())

	c.cache.Put(cacheKey, completions)

	return types.CompletionResult{
		Completions: completions,
		LatencyMS:   float64(latency) / float64(time.Millisecond),
	}
}

func (c *Client) fetch(ctx context.Context, prompt string, n int) ([]string, error) {
	payload := completionRequest{
		Prompt:      prompt,
		MaxTokens:   completionTokens,
		Temperature: 0.7,
		TopP:        0.9,
		TopK:        50,
		N:           n,
		Stop:        stopSequences,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &backendError{status: resp.Status, body: string(b)}
	}
	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	completions := make([]string, 0, len(result.Choices))
	for _, choice := range result.Choices {
		completions = append(completions, choice.Text)
	}
	return completions, nil
}

// backendError carries the backend's status and a clipped body for the log line.
type backendError struct {
	status string
	body   string
}

func (e *backendError) Error() string {
	return "model service returned error: " + e.status + ": " + e.body
}
