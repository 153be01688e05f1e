package pokemon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultEndpoint is the public GraphQL Pokémon API.
const DefaultEndpoint = "https://graphql-pokemon2.vercel.app/"

const pokemonQuery = `
query PokemonInfo($name: String) {
  pokemon(name: $name) {
    id
    number
    name
    image
    attacks {
      special {
        name
        type
        damage
      }
    }
  }
}`

// Client fetches Pokémon from a GraphQL endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	delay    time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint sets the GraphQL endpoint URL.
func WithEndpoint(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the timeout of each request.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithDelay asks the server to delay its response by d, through the "delay"
// request header the public API understands. Zero sends no header.
func WithDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.delay = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the clock used to stamp FetchedAt.
func WithClock(now func() time.Time) ClientOption {
	return func(c *Client) { c.now = now }
}

// NewClient returns a Client for DefaultEndpoint with a 10 second timeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data struct {
		Pokemon *Pokemon `json:"pokemon"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Fetch implements Fetcher. The name is looked up lower-cased; error messages
// quote it as given.
func (c *Client) Fetch(ctx context.Context, name string) (*Pokemon, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     pokemonQuery,
		Variables: map[string]any{"name": strings.ToLower(name)},
	})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")
	if c.delay > 0 {
		req.Header.Set("delay", strconv.FormatInt(c.delay.Milliseconds(), 10))
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch pokemon %q: %w", name, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("pokemon response",
		zap.String("name", name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	var payload graphQLResponse
	decodeErr := json.Unmarshal(raw, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msgs := make([]string, 0, len(payload.Errors))
		for _, e := range payload.Errors {
			msgs = append(msgs, e.Message)
		}
		if len(msgs) == 0 {
			msgs = append(msgs, fmt.Sprintf("unexpected status %s", resp.Status))
		}
		return nil, &Error{Name: name, Message: strings.Join(msgs, "\n")}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}

	p := payload.Data.Pokemon
	if p == nil {
		return nil, NotFound(name)
	}
	p.FetchedAt = c.now().Format(FetchedAtLayout)
	return p, nil
}
