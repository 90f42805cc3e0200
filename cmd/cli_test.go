package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/bella-cli/internal/application"
	"github.com/bnema/bella-cli/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "local-key"

// fakeBackend serves the endpoints the CLI talks to and records what it was
// asked for.
type fakeBackend struct {
	mu       sync.Mutex
	commands []string
	writes   map[string]string
	listed   []string
	noKey    bool
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()

	fb := &fakeBackend{writes: map[string]string{}}
	mux := http.NewServeMux()

	mux.HandleFunc("/__get_local_api_key", func(w http.ResponseWriter, _ *http.Request) {
		fb.mu.Lock()
		noKey := fb.noKey
		fb.mu.Unlock()
		if noKey {
			http.Error(w, "starting", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]string{"api_key": testKey})
	})
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]float64{"cpu_percent": 12.5, "mem_percent": 40, "disk_percent": 71})
	})
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, map[string]string{"reply": "echo: " + req.Message})
	})
	mux.HandleFunc("/api/logs", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string][]string{"logs": {"l1", "l2", "l3"}})
	})
	mux.HandleFunc("/run", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req struct {
			Cmd string `json:"cmd"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		fb.mu.Lock()
		fb.commands = append(fb.commands, req.Cmd)
		fb.mu.Unlock()
		_, _ = w.Write([]byte(`{"stdout":"ok","code":0}`))
	})
	mux.HandleFunc("/stream_run", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: line one\n\ndata: line two\n\ndata: [STREAM-END]\n\n"))
	})
	mux.HandleFunc("/service/restart", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		_, _ = w.Write([]byte(`{"service":"neuro","status":"restarted"}`))
	})
	mux.HandleFunc("/show_log", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		switch r.URL.Query().Get("file") {
		case "command_history.log":
			_, _ = w.Write([]byte("ls\nuptime"))
		case "app.log":
			_, _ = w.Write([]byte("started\nready\n"))
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/list_files", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.listed = append(fb.listed, r.URL.Query().Get("path"))
		fb.mu.Unlock()
		writeJSON(w, map[string]any{"items": []map[string]any{
			{"name": "docs", "is_dir": true},
			{"name": "a.txt", "is_dir": false},
		}})
	})
	mux.HandleFunc("/read_file", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if r.URL.Query().Get("path") != "/tmp/a.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("hello"))
	})
	mux.HandleFunc("/write_file", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var req struct {
			Path    string `json:"path"`
			Content string `json:"content"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		fb.mu.Lock()
		fb.writes[req.Path] = req.Content
		fb.mu.Unlock()
		writeJSON(w, map[string]string{"path": req.Path})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("BELLA_BACKEND_URL", server.URL)

	return fb, server
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+testKey {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestHealthShowsMetrics(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "health")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CPU")
	assert.Contains(t, stdout, " 12.5%")
	assert.Contains(t, stdout, " 71.0%")
}

func TestHealthUnreachableBackendFails(t *testing.T) {
	home := t.TempDir()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	t.Setenv("BELLA_BACKEND_URL", url)

	stdout, _, err := executeCLI(t, home, "health")
	require.Error(t, err)
	assert.Contains(t, stdout, application.BackendUnreachableText)
}

func TestHealthWatchPrintsSummaryUntilCancelled(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	stdout, _, err := executeCLIContext(t, ctx, home, "health", "--watch", "--interval", "50ms")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CPU 12.5% • RAM 40% • Disk 71%")
}

func TestChatPrintsRawReply(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "chat", "--raw", "hello", "bella")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello bella\n", stdout)
}

func TestLogsRecentKeepsLastLines(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "logs", "recent", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, "l2\nl3\n", stdout)
}

func TestRunUsesDefaultCommandAndPrintsJSON(t *testing.T) {
	home := t.TempDir()
	fb, _ := newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "run")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"stdout\": \"ok\"")

	fb.mu.Lock()
	defer fb.mu.Unlock()
	assert.Equal(t, []string{defaultCommand}, fb.commands)
}

func TestRunYAMLOutputKeepsKeyOrder(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "run", "-o", "yaml", "uptime")
	require.NoError(t, err)
	assert.Equal(t, "stdout: ok\ncode: 0\n", stdout)
}

func TestRunRejectsUnknownOutputFormat(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	_, _, err := executeCLI(t, home, "run", "-o", "xml", "uptime")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestRunWithHistoryPrintsHistory(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "run", "--history", "ls")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\nHistory:\nls\nuptime\n")
}

func TestRunWithoutKeyReportsMissingCredential(t *testing.T) {
	home := t.TempDir()
	fb, _ := newFakeBackend(t)
	fb.mu.Lock()
	fb.noKey = true
	fb.mu.Unlock()

	_, _, err := executeCLI(t, home, "run", "ls")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api key available")
}

func TestRunStreamPrintsPayloadsUntilSentinel(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, stderr, err := executeCLI(t, home, "run", "--stream", "tail -f x")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n\n--- stream ended\n", stdout)
	assert.Contains(t, stderr, "Streaming")
}

func TestServiceRestart(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "service", "restart", "neuro")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"status\": \"restarted\"")
}

func TestServiceRejectsUnknownAction(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	_, _, err := executeCLI(t, home, "service", "explode", "neuro")
	require.Error(t, err)
}

func TestLogsHistoryAndShow(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "logs", "history")
	require.NoError(t, err)
	assert.Equal(t, "ls\nuptime\n", stdout)

	stdout, _, err = executeCLI(t, home, "logs", "show", "missing.log")
	require.NoError(t, err)
	assert.Equal(t, "(log not found)\n", stdout)
}

func TestLogsTailPrintsContentAndStopMarker(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	stdout, _, err := executeCLIContext(t, ctx, home, "logs", "tail", "app.log", "--interval", "50ms")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "started\nready\n"), stdout)
	assert.Contains(t, stdout, "(stopped tail)")
	assert.Equal(t, 1, strings.Count(stdout, "started"))
}

func TestLogsTailWithoutKeyShowsNoKeyAndFails(t *testing.T) {
	home := t.TempDir()
	fb, _ := newFakeBackend(t)
	fb.mu.Lock()
	fb.noKey = true
	fb.mu.Unlock()

	stdout, _, err := executeCLIContext(t, context.Background(), home, "logs", "tail", "app.log", "--interval", "10ms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no api key available")
	assert.Equal(t, application.NoKeyText, stdout)
}

func TestFilesListAndCat(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "files", "ls", "/tmp")
	require.NoError(t, err)
	assert.Equal(t, "[DIR] docs\n     a.txt\n", stdout)

	stdout, _, err = executeCLI(t, home, "files", "cat", "/tmp/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)

	stdout, _, err = executeCLI(t, home, "files", "cat", "--highlight", "/tmp/missing.go")
	require.NoError(t, err)
	assert.Equal(t, "(not found)\n", stdout)
}

func TestFilesWriteRelistsParentDirectory(t *testing.T) {
	home := t.TempDir()
	fb, _ := newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "files", "write", "/tmp/notes/b.txt", "--content", "draft")
	require.NoError(t, err)
	assert.Equal(t, "Saved: /tmp/notes/b.txt\n[DIR] docs\n     a.txt\n", stdout)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	assert.Equal(t, "draft", fb.writes["/tmp/notes/b.txt"])
	assert.Equal(t, []string{"/tmp/notes"}, fb.listed)
}

func TestFilesWriteRequiresContentSource(t *testing.T) {
	home := t.TempDir()
	fb, _ := newFakeBackend(t)

	_, _, err := executeCLI(t, home, "files", "write", "/tmp/c.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the flags")

	_, _, err = executeCLI(t, home, "files", "write", "/tmp/empty.txt", "--content", "")
	require.NoError(t, err)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	_, wroteC := fb.writes["/tmp/c.txt"]
	assert.False(t, wroteC)
	content, wroteEmpty := fb.writes["/tmp/empty.txt"]
	assert.True(t, wroteEmpty)
	assert.Empty(t, content)
}

func TestFilesWriteFromLocalFile(t *testing.T) {
	home := t.TempDir()
	fb, _ := newFakeBackend(t)

	local := filepath.Join(t.TempDir(), "src.txt")
	require.NoError(t, os.WriteFile(local, []byte("from disk"), 0o600))

	_, _, err := executeCLI(t, home, "files", "write", "/tmp/c.txt", "--from", local)
	require.NoError(t, err)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	assert.Equal(t, "from disk", fb.writes["/tmp/c.txt"])
}

func TestCatalogAddListRemove(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	_, _, err := executeCLI(t, home, "catalog", "add-service", "worker", "--description", "queue worker")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "catalog", "add-log", "worker.log")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "services:\n  bella\n  fusion\n  neuro\n  worker - queue worker\n")
	assert.Contains(t, stdout, "logs:\n  command_history.log\n  worker.log\n")

	_, _, err = executeCLI(t, home, "catalog", "add-service", "worker")
	require.Error(t, err)

	_, _, err = executeCLI(t, home, "catalog", "remove", "service", "worker")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "catalog", "list")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "worker -")

	_, err = os.Stat(filepath.Join(home, ".bella", "catalog.toml"))
	require.NoError(t, err)
}

func TestConfigFileSetsDefaultCommand(t *testing.T) {
	home := t.TempDir()
	fb, _ := newFakeBackend(t)

	configDir := filepath.Join(home, ".bella")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[run]\ndefault_command = \"uptime\"\n"), 0o600))

	_, _, err := executeCLI(t, home, "run")
	require.NoError(t, err)

	fb.mu.Lock()
	defer fb.mu.Unlock()
	assert.Equal(t, []string{"uptime"}, fb.commands)
}

func TestInvalidConfigSurfacesOnEveryCommand(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)
	t.Setenv("BELLA_POLL_TAIL_INTERVAL", "-1s")

	_, _, err := executeCLI(t, home, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll.tail_interval must be positive")
}

func TestVersionCommand(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestUnknownCommandFails(t *testing.T) {
	home := t.TempDir()
	newFakeBackend(t)

	_, _, err := executeCLI(t, home, "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIContext(t, context.Background(), home, args...)
}

func executeCLIContext(t *testing.T, ctx context.Context, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}
