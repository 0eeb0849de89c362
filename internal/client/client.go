package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/goto/salt/log"
	"github.com/heldtogether/traintrack/core/dataset"
	"github.com/heldtogether/traintrack/pkg/retry"
	"golang.org/x/oauth2"
)

// CorrelationIDHeaderKey carries the ID shared by all requests of one publish.
const CorrelationIDHeaderKey = "X-Correlation-ID"

var _ dataset.Client = (*Client)(nil)

// Client talks JSON and multipart to the catalog API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	retry   retry.Policy
	logger  log.Logger
}

type options struct {
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	logger      log.Logger
}

type Option func(*options)

// WithHTTPClient replaces the underlying http.Client. Timeout and token
// settings from Config are not applied to it.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(o *options) {
		o.tokenSource = ts
	}
}

func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	baseURL, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL in config: %w", err)
	}

	o := options{logger: log.NewNoop()}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		ts := o.tokenSource
		if ts == nil && cfg.TokenPath != "" {
			ts, err = tokenSourceFromFile(cfg.TokenPath, o.logger)
			if err != nil {
				return nil, err
			}
		}
		httpClient = &http.Client{Timeout: cfg.Timeout}
		if ts != nil {
			httpClient.Transport = &oauth2.Transport{Source: ts}
		}
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		retry:   cfg.Retry.Policy(),
		logger:  o.logger,
	}, nil
}

func tokenSourceFromFile(path string, logger log.Logger) (oauth2.TokenSource, error) {
	tok, err := LoadToken(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("no stored credentials, sending unauthenticated requests", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("load token: %w", err)
	}
	return oauth2.StaticTokenSource(tok), nil
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, c.retry, http.MethodGet, path, nil, out)
}

// PostJSON is attempted once regardless of the retry policy. A create that
// failed after the server committed it would otherwise be repeated.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}

	return c.do(ctx, retry.Policy{MaxAttempts: 1}, http.MethodPost, path, func() (io.ReadCloser, string, error) {
		return io.NopCloser(bytes.NewReader(b)), "application/json", nil
	}, out)
}

// PostFiles streams files as a multipart form. Files are reopened on every
// attempt.
func (c *Client) PostFiles(ctx context.Context, path string, files []dataset.FormFile, out interface{}) error {
	return c.do(ctx, c.retry, http.MethodPost, path, func() (io.ReadCloser, string, error) {
		pr, pw := io.Pipe()
		mw := multipart.NewWriter(pw)
		go func() {
			pw.CloseWithError(writeMultipart(mw, files))
		}()
		return pr, mw.FormDataContentType(), nil
	}, out)
}

func writeMultipart(mw *multipart.Writer, files []dataset.FormFile) error {
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return err
		}
		if err := copyFile(part, f); err != nil {
			return err
		}
	}
	return mw.Close()
}

func copyFile(w io.Writer, f dataset.FormFile) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", f.FileName, err)
	}
	defer rc.Close()

	_, err = io.Copy(w, rc)
	return err
}

type bodyFunc func() (io.ReadCloser, string, error)

func (c *Client) do(ctx context.Context, policy retry.Policy, method, p string, body bodyFunc, out interface{}) error {
	return retry.Do(ctx, policy, func(attempt int) error {
		req, err := c.newRequest(ctx, method, p, body)
		if err != nil {
			return err
		}

		if attempt > 1 {
			c.logger.Debug("retrying request", "method", method, "path", p, "attempt", attempt)
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return retry.Retryable(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			herr := newHTTPError(resp)
			if herr.Temporary() {
				return retry.Retryable(herr)
			}
			return herr
		}

		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, p, err)
		}
		return nil
	})
}

func (c *Client) newRequest(ctx context.Context, method, p string, body bodyFunc) (*http.Request, error) {
	u := *c.baseURL
	u.Path = path.Join(u.Path, p)

	var (
		rc          io.ReadCloser
		contentType string
	)
	if body != nil {
		var err error
		rc, contentType, err = body()
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rc)
	if err != nil {
		if rc != nil {
			rc.Close()
		}
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if id := dataset.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(CorrelationIDHeaderKey, id)
	}
	return req, nil
}
