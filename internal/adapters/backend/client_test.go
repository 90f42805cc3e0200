package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "key-123"

// newBackend serves the key endpoint and whatever routes the test adds.
func newBackend(t *testing.T, routes map[string]http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()

	var keyRequests atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc(keyPath, func(w http.ResponseWriter, _ *http.Request) {
		keyRequests.Add(1)
		_, _ = w.Write([]byte(`{"api_key":"` + testKey + `"}`))
	})
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewClient(server.URL, server.Client()), &keyRequests
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
}

func TestClientHealth(t *testing.T) {
	t.Parallel()

	client, keys := newBackend(t, map[string]http.HandlerFunc{
		"GET /metrics": func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"cpu_percent":12.5,"mem_percent":40,"disk_percent":81}`))
		},
	})

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Health{CPUPercent: 12.5, MemPercent: 40, DiskPercent: 81}, health)
	assert.Equal(t, int32(0), keys.Load())
}

func TestClientChatAndRecentLogs(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]http.HandlerFunc{
		"POST /api/chat": func(w http.ResponseWriter, r *http.Request) {
			var body chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "hello bella", body.Message)
			_, _ = w.Write([]byte(`{"reply":"hi there"}`))
		},
		"GET /api/logs": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"logs":["one","two"]}`))
		},
	})

	reply, err := client.Chat(context.Background(), "hello bella")
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)

	logs, err := client.RecentLogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, logs)
}

func TestClientRunFetchesKeyPerCall(t *testing.T) {
	t.Parallel()

	client, keys := newBackend(t, map[string]http.HandlerFunc{
		"POST /run": func(w http.ResponseWriter, r *http.Request) {
			requireBearer(t, r)
			var body commandRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte(`{"cmd":"` + body.Cmd + `","stdout":"ok"}`))
		},
	})

	for i := 0; i < 2; i++ {
		raw, err := client.Run(context.Background(), "services dekho")
		require.NoError(t, err)
		assert.JSONEq(t, `{"cmd":"services dekho","stdout":"ok"}`, string(raw))
	}
	assert.Equal(t, int32(2), keys.Load())
}

func TestClientRunRejectsNonJSONBody(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]http.HandlerFunc{
		"POST /run": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		},
	})

	_, err := client.Run(context.Background(), "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, errInvalidJSON)
}

func TestClientServiceAction(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]http.HandlerFunc{
		"POST /service/restart": func(w http.ResponseWriter, r *http.Request) {
			requireBearer(t, r)
			var body serviceRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "fusion", body.Service)
			_, _ = w.Write([]byte(`{"status":"restarted"}`))
		},
	})

	raw, err := client.ServiceAction(context.Background(), domain.ServiceActionRestart, "fusion")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"restarted"}`, string(raw))

	_, err = client.ServiceAction(context.Background(), domain.ServiceAction("reload"), "fusion")
	require.Error(t, err)
}

func TestClientShowLogAndNotFound(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]http.HandlerFunc{
		"GET /show_log": func(w http.ResponseWriter, r *http.Request) {
			requireBearer(t, r)
			if r.URL.Query().Get("file") != domain.HistoryLogFile {
				http.Error(w, "missing", http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte("ran: services dekho\n"))
		},
	})

	text, err := client.ShowLog(context.Background(), domain.HistoryLogFile)
	require.NoError(t, err)
	assert.Equal(t, "ran: services dekho\n", text)

	_, err = client.ShowLog(context.Background(), "nope.log")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrServer)
}

func TestClientFiles(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]http.HandlerFunc{
		"GET /list_files": func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.Equal(t, "/tmp", r.URL.Query().Get("path"))
			_, _ = w.Write([]byte(`{"items":[{"name":"a.txt","is_dir":false},{"name":"sub","is_dir":true}]}`))
		},
		"GET /read_file": func(w http.ResponseWriter, r *http.Request) {
			requireBearer(t, r)
			if r.URL.Query().Get("path") != "/tmp/a.txt" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte("x"))
		},
		"POST /write_file": func(w http.ResponseWriter, r *http.Request) {
			requireBearer(t, r)
			var body writeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, writeRequest{Path: "/tmp/a.txt", Content: "x"}, body)
			_, _ = w.Write([]byte(`{"path":"/tmp/a.txt"}`))
		},
	})

	items, err := client.ListFiles(context.Background(), "/tmp")
	require.NoError(t, err)
	assert.Equal(t, []domain.FileItem{{Name: "a.txt"}, {Name: "sub", IsDir: true}}, items)

	content, err := client.ReadFile(context.Background(), "/tmp/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", content)

	_, err = client.ReadFile(context.Background(), "/tmp/missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	saved, err := client.WriteFile(context.Background(), "/tmp/a.txt", "x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.txt", saved)
}

func TestClientOpenStream(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]http.HandlerFunc{
		"POST /stream_run": func(w http.ResponseWriter, r *http.Request) {
			requireBearer(t, r)
			w.Header().Set("Content-Type", "text/event-stream")
			_, _ = w.Write([]byte("data: hello\n\ndata: [STREAM-END]\n\n"))
		},
	})

	body, err := client.OpenStream(context.Background(), "tail")
	require.NoError(t, err)
	t.Cleanup(func() { _ = body.Close() })

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "data: hello\n\ndata: [STREAM-END]\n\n", string(data))
}

func TestClientOpenStreamServerFailure(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]http.HandlerFunc{
		"POST /stream_run": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "command not allowed", http.StatusBadRequest)
		},
	})

	_, err := client.OpenStream(context.Background(), "rm -rf /")
	require.Error(t, err)

	var serverErr *domain.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "command not allowed\n", serverErr.Body)
}
