// Package client talks to the BeFit service over HTTP. It is used by the
// terminal client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2beens/befit/internal/screen"
	"github.com/2beens/befit/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL = "http://localhost:9000"
	userAgent      = "BeFit/cli"
)

var ErrNotFound = errors.New("not found")

// StatusError is returned for every non 2xx answer.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("befit service: %d %s", e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Screen is the served envelope with the body left undecoded, it depends on
// the screen name.
type Screen struct {
	Name        screen.Name     `json:"name"`
	Title       string          `json:"title"`
	Mode        screen.Mode     `json:"mode"`
	Palette     screen.Palette  `json:"palette"`
	TopBar      screen.TopBar   `json:"topBar"`
	Body        json.RawMessage `json:"body"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

type CommandResult struct {
	Command  string          `json:"command"`
	Navigate string          `json:"navigate,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client with a traced transport.
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	})
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Screen fetches a screen by its path below /screens, e.g. "diet" or
// "workouts/push".
func (c *Client) Screen(ctx context.Context, path string, query url.Values) (_ *Screen, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.screen")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	endpoint := "/screens/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	s := &Screen{}
	if err := c.do(ctx, http.MethodGet, endpoint, nil, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get fetches any screen route, e.g. a navigate target of a command result.
func (c *Client) Get(ctx context.Context, path string) (_ *Screen, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	s := &Screen{}
	if err := c.do(ctx, http.MethodGet, "/"+strings.TrimPrefix(path, "/"), nil, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *Client) Commands(ctx context.Context) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.commands")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var resp struct {
		Commands []string `json:"commands"`
	}
	if err := c.do(ctx, http.MethodGet, "/commands", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Commands, nil
}

// Dispatch runs a named command. A nil payload sends an empty body.
func (c *Client) Dispatch(ctx context.Context, name string, payload any) (_ *CommandResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.dispatch")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	res := &CommandResult{}
	if err := c.do(ctx, http.MethodPost, "/commands/"+url.PathEscape(name), payload, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) ToggleExercise(ctx context.Context, sessionID, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.toggleExercise")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	endpoint := fmt.Sprintf(
		"/workouts/sessions/%s/exercises/%s/toggle",
		url.PathEscape(sessionID),
		url.PathEscape(exerciseID),
	)
	return c.do(ctx, http.MethodPost, endpoint, nil, nil)
}

func (c *Client) FinishSession(ctx context.Context, sessionID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "client.finishSession")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return c.do(ctx, http.MethodPost, "/workouts/sessions/"+url.PathEscape(sessionID)+"/finish", nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response bytes: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(respBytes)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
