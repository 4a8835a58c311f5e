package fetch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type recordingMetrics struct {
	successes int
	records   int
	failures  map[string]int
}

func (m *recordingMetrics) RecordFetchSuccess(records int, _ time.Duration) {
	m.successes++
	m.records += records
}

func (m *recordingMetrics) RecordFetchFailure(reason string, _ time.Duration) {
	if m.failures == nil {
		m.failures = map[string]int{}
	}
	m.failures[reason]++
}

func TestFetchPostsDecodesArray(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Method != http.MethodGet || r.URL.Path != "/posts" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"userId":7,"title":"Foo","body":"bar"},{"id":2,"userId":7,"title":"Baz","body":"qux"}]`)
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	client := newTestClient(server.URL+"/", metrics)

	posts, err := client.FetchPosts(context.Background())
	if err != nil {
		t.Fatalf("fetch posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != 1 || posts[0].UserID != 7 || posts[0].Title != "Foo" || posts[0].Body != "bar" {
		t.Fatalf("unexpected first post: %+v", posts[0])
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single request, got %d", hits.Load())
	}
	if metrics.successes != 1 || metrics.records != 2 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestFetchCollectionNon2xxIsTransportErrorWithStatus(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	_, err := newTestClient(server.URL, metrics).FetchPosts(context.Background())

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T (%v)", err, err)
	}
	if transportErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", transportErr.StatusCode)
	}
	if transportErr.Error() != "HTTP error! status: 503" {
		t.Fatalf("unexpected message %q", transportErr.Error())
	}
	if hits.Load() != 1 {
		t.Fatalf("expected no retry, got %d requests", hits.Load())
	}
	if metrics.failures["status"] != 1 {
		t.Fatalf("expected status failure to be recorded, got %v", metrics.failures)
	}
}

func TestFetchCollectionNetworkFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(url, nil).FetchPosts(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T (%v)", err, err)
	}
	if transportErr.StatusCode != 0 || transportErr.Err == nil {
		t.Fatalf("expected a network error without status, got %+v", transportErr)
	}
}

func TestFetchCollectionInvalidURLIsRecorded(t *testing.T) {
	metrics := &recordingMetrics{}
	_, err := newTestClient("://nope", metrics).FetchPosts(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T (%v)", err, err)
	}
	if metrics.failures["transport"] != 1 {
		t.Fatalf("expected transport failure to be recorded, got %v", metrics.failures)
	}
}

func TestFetchCollectionOversizedBody(t *testing.T) {
	const payload = `[{"id":1,"userId":1,"title":"t","body":"b"}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, payload)
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	client := newTestClient(server.URL, metrics)
	client.maxBodySize = int64(len(payload))
	if _, err := client.FetchPosts(context.Background()); err != nil {
		t.Fatalf("body at the limit should be accepted: %v", err)
	}

	client.maxBodySize = int64(len(payload)) - 1
	_, err := client.FetchPosts(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) || transportErr.StatusCode != 0 {
		t.Fatalf("expected TransportError without status, got %T (%v)", err, err)
	}
	if metrics.successes != 1 || metrics.failures["transport"] != 1 {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
}

func TestFetchCollectionBadBodyIsParseError(t *testing.T) {
	bodies := map[string]string{
		"not json":     "<html>",
		"object":       `{"id":1}`,
		"null":         "null",
		"wrong shape":  `[1, 2, 3]`,
		"wrong fields": `[{"id":"one"}]`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			}))
			defer server.Close()

			metrics := &recordingMetrics{}
			_, err := newTestClient(server.URL, metrics).FetchPosts(context.Background())
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected ParseError, got %T (%v)", err, err)
			}
			if metrics.failures["parse"] != 1 {
				t.Fatalf("expected parse failure to be recorded, got %v", metrics.failures)
			}
		})
	}
}

func TestFetchCollectionEmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "[]")
	}))
	defer server.Close()

	posts, err := newTestClient(server.URL, nil).FetchPosts(context.Background())
	if err != nil {
		t.Fatalf("fetch posts: %v", err)
	}
	if posts == nil || len(posts) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", posts)
	}
}

func TestFetchPostByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/42" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `{"id":42,"userId":3,"title":"answer","body":"life"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	post, err := client.FetchPost(context.Background(), 42)
	if err != nil {
		t.Fatalf("fetch post: %v", err)
	}
	if post.ID != 42 || post.Title != "answer" {
		t.Fatalf("unexpected post: %+v", post)
	}

	_, err = client.FetchPost(context.Background(), 7)
	var transportErr *TransportError
	if !errors.As(err, &transportErr) || transportErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 TransportError, got %v", err)
	}
}

func newTestClient(baseURL string, metrics MetricsRecorder) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(baseURL, nil, logger, metrics)
}
