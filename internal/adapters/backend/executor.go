package backend

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

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/bnema/bella-cli/internal/ports"
	"pkt.systems/pslog"
)

const (
	maxResponseBytes    = 16 << 20
	maxErrorBodyBytes   = 1 << 20
	DefaultBaseURL      = "http://127.0.0.1:8000"
	contentTypeJSON     = "application/json"
	authorizationHeader = "Authorization"
)

var ErrResponseTooLarge = errors.New("response too large")

type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Authenticated bool
	Body          any
}

func (r Request) label() string {
	return r.Method + " " + r.Path
}

type Response struct {
	Status int
	Body   []byte
}

func (r Response) Text() string {
	return string(r.Body)
}

func (r Response) DecodeJSON(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Executor performs one request/response exchange against the backend. It
// holds no state between calls and is safe for concurrent use.
type Executor struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials ports.CredentialProvider

	// MaxResponseBytes caps a buffered response body. Zero means 16 MiB.
	MaxResponseBytes int64
}

// Execute issues req and reads the whole response body.
func (e Executor) Execute(ctx context.Context, req Request) (Response, error) {
	resp, err := e.Open(ctx, req)
	if err != nil {
		return Response{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	limit := e.MaxResponseBytes
	if limit <= 0 {
		limit = maxResponseBytes
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return Response{}, &domain.TransportError{Op: req.label(), Err: fmt.Errorf("read response: %w", err)}
	}
	if int64(len(body)) > limit {
		return Response{}, fmt.Errorf("%s: %w: more than %d bytes", req.label(), ErrResponseTooLarge, limit)
	}

	return Response{Status: resp.StatusCode, Body: body}, nil
}

// Open issues req and hands back the successful response with its body
// unread. The caller owns the body. A non-2xx response is drained and
// returned as *domain.ServerError.
func (e Executor) Open(ctx context.Context, req Request) (*http.Response, error) {
	endpoint, err := buildAPIURL(e.BaseURL, req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var credential domain.Credential
	if req.Authenticated {
		var ok bool
		if e.Credentials != nil {
			credential, ok = e.Credentials.Acquire(ctx)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", req.label(), domain.ErrNoCredential)
		}
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", req.label(), err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", req.label(), err)
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}
	if req.Authenticated {
		httpReq.Header.Set(authorizationHeader, credential.BearerHeader())
	}

	resp, err := e.httpClient().Do(httpReq)
	if err != nil {
		return nil, &domain.TransportError{Op: req.label(), Err: err}
	}

	pslog.Ctx(ctx).Debug("backend request", "method", req.Method, "path", req.Path, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &domain.ServerError{Status: resp.StatusCode, Body: string(text)}
	}

	return resp, nil
}

func (e Executor) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return http.DefaultClient
}

func isStatus(err error, status int) bool {
	var serverErr *domain.ServerError
	return errors.As(err, &serverErr) && serverErr.Status == status
}

func buildAPIURL(baseURL string, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("backend base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse backend base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("backend base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("backend base url host is required")
	}

	endpoint := *parsed
	endpoint.Path = strings.TrimRight(parsed.Path, "/") + "/" + strings.TrimLeft(path, "/")
	endpoint.RawPath = ""
	endpoint.RawQuery = ""
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String(), nil
}
