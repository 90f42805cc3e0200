package backend

import (
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
)

var errInvalidJSON = errors.New("response is not valid JSON")

// Client maps the backend's HTTP endpoints onto typed calls.
type Client struct {
	exec Executor
}

var _ ports.Backend = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	return NewClientWithCredentials(baseURL, httpClient, KeyProvider{BaseURL: baseURL, HTTPClient: httpClient})
}

func NewClientWithCredentials(baseURL string, httpClient *http.Client, credentials ports.CredentialProvider) *Client {
	return &Client{exec: Executor{BaseURL: baseURL, HTTPClient: httpClient, Credentials: credentials}}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type logsResponse struct {
	Logs []string `json:"logs"`
}

type commandRequest struct {
	Cmd string `json:"cmd"`
}

type serviceRequest struct {
	Service string `json:"service"`
}

type listResponse struct {
	Items []domain.FileItem `json:"items"`
}

type writeRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type writeResponse struct {
	Path string `json:"path"`
}

func (c *Client) Health(ctx context.Context) (domain.Health, error) {
	var health domain.Health
	if err := c.getJSON(ctx, "/metrics", nil, false, &health); err != nil {
		return domain.Health{}, fmt.Errorf("fetch health: %w", err)
	}
	return health, nil
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	resp, err := c.exec.Execute(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/chat",
		Body:   chatRequest{Message: message},
	})
	if err != nil {
		return "", fmt.Errorf("send chat message: %w", err)
	}

	var payload chatResponse
	if err := resp.DecodeJSON(&payload); err != nil {
		return "", fmt.Errorf("send chat message: %w", err)
	}
	return payload.Reply, nil
}

func (c *Client) RecentLogs(ctx context.Context) ([]string, error) {
	var payload logsResponse
	if err := c.getJSON(ctx, "/api/logs", nil, false, &payload); err != nil {
		return nil, fmt.Errorf("fetch recent logs: %w", err)
	}
	return payload.Logs, nil
}

func (c *Client) Run(ctx context.Context, command string) (json.RawMessage, error) {
	raw, err := c.postRaw(ctx, "/run", commandRequest{Cmd: command})
	if err != nil {
		return nil, fmt.Errorf("run command: %w", err)
	}
	return raw, nil
}

// OpenStream starts a streamed command run. The returned body yields the raw
// event stream and must be closed by the caller.
func (c *Client) OpenStream(ctx context.Context, command string) (io.ReadCloser, error) {
	resp, err := c.exec.Open(ctx, Request{
		Method:        http.MethodPost,
		Path:          "/stream_run",
		Authenticated: true,
		Body:          commandRequest{Cmd: command},
	})
	if err != nil {
		return nil, fmt.Errorf("open command stream: %w", err)
	}
	return resp.Body, nil
}

func (c *Client) ServiceAction(ctx context.Context, action domain.ServiceAction, service string) (json.RawMessage, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("unsupported service action %q", action)
	}

	raw, err := c.postRaw(ctx, "/service/"+url.PathEscape(string(action)), serviceRequest{Service: service})
	if err != nil {
		return nil, fmt.Errorf("%s service %s: %w", action, service, err)
	}
	return raw, nil
}

func (c *Client) ShowLog(ctx context.Context, file string) (string, error) {
	text, err := c.getText(ctx, "/show_log", url.Values{"file": []string{file}})
	if err != nil {
		return "", fmt.Errorf("show log %s: %w", file, err)
	}
	return text, nil
}

func (c *Client) ListFiles(ctx context.Context, path string) ([]domain.FileItem, error) {
	var payload listResponse
	if err := c.getJSON(ctx, "/list_files", url.Values{"path": []string{path}}, false, &payload); err != nil {
		return nil, fmt.Errorf("list files %q: %w", path, err)
	}
	return payload.Items, nil
}

func (c *Client) ReadFile(ctx context.Context, path string) (string, error) {
	text, err := c.getText(ctx, "/read_file", url.Values{"path": []string{path}})
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	return text, nil
}

func (c *Client) WriteFile(ctx context.Context, path string, content string) (string, error) {
	resp, err := c.exec.Execute(ctx, Request{
		Method:        http.MethodPost,
		Path:          "/write_file",
		Authenticated: true,
		Body:          writeRequest{Path: path, Content: content},
	})
	if err != nil {
		return "", fmt.Errorf("write file %s: %w", path, err)
	}

	var payload writeResponse
	if err := resp.DecodeJSON(&payload); err != nil {
		return "", fmt.Errorf("write file %s: %w", path, err)
	}
	if strings.TrimSpace(payload.Path) == "" {
		payload.Path = path
	}
	return payload.Path, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, authenticated bool, out any) error {
	resp, err := c.exec.Execute(ctx, Request{
		Method:        http.MethodGet,
		Path:          path,
		Query:         query,
		Authenticated: authenticated,
	})
	if err != nil {
		return err
	}
	return resp.DecodeJSON(out)
}

// getText fetches an authenticated plain-text resource. A 404 becomes
// domain.ErrNotFound so callers can render it as an ordinary negative result.
func (c *Client) getText(ctx context.Context, path string, query url.Values) (string, error) {
	resp, err := c.exec.Execute(ctx, Request{
		Method:        http.MethodGet,
		Path:          path,
		Query:         query,
		Authenticated: true,
	})
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return "", fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return "", err
	}
	return resp.Text(), nil
}

func (c *Client) postRaw(ctx context.Context, path string, body any) (json.RawMessage, error) {
	resp, err := c.exec.Execute(ctx, Request{
		Method:        http.MethodPost,
		Path:          path,
		Authenticated: true,
		Body:          body,
	})
	if err != nil {
		return nil, err
	}
	if !json.Valid(resp.Body) {
		return nil, errInvalidJSON
	}
	return json.RawMessage(resp.Body), nil
}
