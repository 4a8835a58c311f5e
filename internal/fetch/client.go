// Package fetch reads the remote post collection. Every call issues exactly
// one GET; retries and caching are left to the caller.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Joseda-hg/lazyboard/internal/model"
)

const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// MetricsRecorder receives fetch outcomes.
type MetricsRecorder interface {
	RecordFetchSuccess(records int, duration time.Duration)
	RecordFetchFailure(reason string, duration time.Duration)
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
	metrics     MetricsRecorder
	maxBodySize int64
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger, metrics MetricsRecorder) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  httpClient,
		logger:      logger,
		metrics:     metrics,
		maxBodySize: DefaultMaxBodySize,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) FetchPosts(ctx context.Context) ([]model.Post, error) {
	return c.FetchCollection(ctx, c.baseURL+"/posts")
}

func (c *Client) FetchPost(ctx context.Context, id int64) (model.Post, error) {
	url := fmt.Sprintf("%s/posts/%d", c.baseURL, id)
	body, start, err := c.get(ctx, url)
	if err != nil {
		return model.Post{}, err
	}

	var post model.Post
	if err := json.Unmarshal(body, &post); err != nil {
		c.fail(url, "parse", start, slog.String("error", err.Error()))
		return model.Post{}, &ParseError{URL: url, Err: err}
	}
	c.succeed(url, 1, start)
	return post, nil
}

// FetchCollection GETs url and decodes a JSON array of records.
func (c *Client) FetchCollection(ctx context.Context, url string) ([]model.Post, error) {
	body, start, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var records []model.Post
	if err := json.Unmarshal(body, &records); err != nil {
		c.fail(url, "parse", start, slog.String("error", err.Error()))
		return nil, &ParseError{URL: url, Err: err}
	}
	if records == nil {
		err := errors.New("expected a JSON array")
		c.fail(url, "parse", start, slog.String("error", err.Error()))
		return nil, &ParseError{URL: url, Err: err}
	}
	c.succeed(url, len(records), start)
	return records, nil
}

// get performs the single request and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, url string) ([]byte, time.Time, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.fail(url, "transport", start, slog.String("error", err.Error()))
		return nil, start, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(url, "transport", start, slog.String("error", err.Error()))
		return nil, start, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.fail(url, "status", start, slog.Int("http_status", resp.StatusCode))
		return nil, start, &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	// one extra byte tells an oversized body apart from one exactly at the limit
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	if err != nil {
		c.fail(url, "transport", start, slog.String("error", err.Error()))
		return nil, start, &TransportError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBodySize {
		c.fail(url, "transport", start, slog.Int64("max_body_size", c.maxBodySize))
		return nil, start, &TransportError{URL: url, Err: fmt.Errorf("response body exceeds %d bytes", c.maxBodySize)}
	}
	return body, start, nil
}

func (c *Client) succeed(url string, records int, start time.Time) {
	duration := time.Since(start)
	c.logger.Info("fetched collection",
		slog.String("url", url),
		slog.Int("records", records),
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)
	if c.metrics != nil {
		c.metrics.RecordFetchSuccess(records, duration)
	}
}

func (c *Client) fail(url, reason string, start time.Time, attr slog.Attr) {
	duration := time.Since(start)
	c.logger.Error("fetch failed",
		slog.String("url", url),
		slog.String("reason", reason),
		attr,
		slog.Float64("duration_ms", float64(duration.Milliseconds())),
	)
	if c.metrics != nil {
		c.metrics.RecordFetchFailure(reason, duration)
	}
}
