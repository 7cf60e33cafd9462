package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"crm-master-api/internal/session"
)

const (
	defaultTimeout = 15 * time.Second
	defaultRetries = 2
)

// Result is the uniform envelope every call returns. Transport failures,
// non-2xx responses and cancellations all come back as Status=false with a
// message; callers never see a raw error for HTTP-level problems.
type Result struct {
	Status  bool
	Code    int
	Data    json.RawMessage
	Message string

	canceled bool
}

// Canceled reports whether the request was aborted by its context. A
// canceled result must never be written to caches or local state.
func (r Result) Canceled() bool {
	return r.canceled
}

// Decode unmarshals a successful result's payload into T.
func Decode[T any](r Result) (T, error) {
	var out T
	if !r.Status {
		return out, errors.New(r.Message)
	}
	if len(r.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.Data, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Client issues REST calls against one backend. The bearer token is read
// from the session store on every request so a login mid-session takes
// effect immediately.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *session.Store
	Log     *zap.Logger

	// OnUnauthorized runs (fire-and-forget) after a 401 clears the session.
	OnUnauthorized func()

	// Timeout applies per attempt. Retries covers transport errors and 5xx
	// responses; POST is never retried.
	Timeout time.Duration
	Retries int
}

func NewClient(baseURL string, sess *session.Store, log *zap.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Session: sess,
		Log:     log,
		Timeout: defaultTimeout,
		Retries: defaultRetries,
	}
}

func (c *Client) Get(ctx context.Context, path string) Result {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) Result {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) Result {
	return c.do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) Result {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return Result{Status: false, Message: "invalid request body: " + err.Error()}
		}
		payload = b
	}

	attempts := 1
	if method != http.MethodPost {
		attempts += c.Retries
	}

	var last Result
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Result{Status: false, Message: "request canceled", canceled: true}
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}

		res, retryable := c.attempt(ctx, method, path, payload)
		if res.Status || res.canceled || !retryable {
			return res
		}
		last = res
		c.Log.Warn("request failed, retrying",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.String("message", res.Message))
	}
	return last
}

// attempt runs one request. The second return value reports whether the
// failure is transient (transport error or 5xx) and may be retried.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte) (Result, bool) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(actx, method, c.BaseURL+path, reader)
	if err != nil {
		return Result{Status: false, Message: err.Error()}, false
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Result{Status: false, Message: "request canceled", canceled: true}, false
		}
		return Result{Status: false, Message: err.Error()}, true
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return Result{Status: false, Message: "request canceled", canceled: true}, false
		}
		return Result{Status: false, Message: err.Error()}, true
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.Session.Clear()
		if c.OnUnauthorized != nil {
			go c.OnUnauthorized()
		}
		return Result{Status: false, Code: resp.StatusCode, Message: serverMessage(raw, "unauthorized")}, false
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Status: true, Code: resp.StatusCode, Data: raw}, false
	}

	res := Result{
		Status:  false,
		Code:    resp.StatusCode,
		Message: serverMessage(raw, http.StatusText(resp.StatusCode)),
	}
	return res, resp.StatusCode >= 500
}

// serverMessage pulls a human message out of an error body. The backend
// answers failures with {"error": ...}; some proxies use {"message": ...}.
func serverMessage(raw []byte, fallback string) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fallback
}
