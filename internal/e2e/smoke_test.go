package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	backendURL := startBackend(t)

	stdout, stderr, err := runBella(t, binaryPath, home, backendURL, "run", "--stream", "uptime")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "up 3 days")
	assert.Contains(t, stdout, "--- stream ended")

	stdout, stderr, err = runBella(t, binaryPath, home, backendURL, "logs", "history")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "uptime")
}

func startBackend(t *testing.T) string {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/__get_local_api_key", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"api_key": "smoke"})
	})
	mux.HandleFunc("/stream_run", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("data: up 3 days\n\ndata: [STREAM-END]\n\n"))
	})
	mux.HandleFunc("/show_log", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("uptime\n"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "bella-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/bella")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build bella binary: %s", string(output))
	return binaryPath
}

func runBella(t *testing.T, binaryPath, home, backendURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "BELLA_BACKEND_URL="+backendURL)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
