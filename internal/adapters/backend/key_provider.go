package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bnema/bella-cli/internal/domain"
	"github.com/bnema/bella-cli/internal/ports"
	"pkt.systems/pslog"
)

const keyPath = "/__get_local_api_key"

var errEmptyKey = errors.New("key response missing api_key")

// KeyProvider asks the backend for its local API key on every call. Keys are
// deliberately not cached: a restarted backend hands out a new key, and
// asking again is how the client recovers.
type KeyProvider struct {
	BaseURL    string
	HTTPClient *http.Client
}

var _ ports.CredentialProvider = KeyProvider{}

type keyResponse struct {
	APIKey string `json:"api_key"`
}

func (p KeyProvider) Acquire(ctx context.Context) (domain.Credential, bool) {
	key, err := p.fetch(ctx)
	if err != nil {
		pslog.Ctx(ctx).Debug("api key unavailable", "err", err)
		return "", false
	}
	return key, true
}

func (p KeyProvider) fetch(ctx context.Context) (domain.Credential, error) {
	exec := Executor{BaseURL: p.BaseURL, HTTPClient: p.HTTPClient}
	resp, err := exec.Execute(ctx, Request{Method: http.MethodGet, Path: keyPath})
	if err != nil {
		return "", err
	}

	var payload keyResponse
	if err := resp.DecodeJSON(&payload); err != nil {
		return "", err
	}
	key := strings.TrimSpace(payload.APIKey)
	if key == "" {
		return "", errEmptyKey
	}

	return domain.Credential(key), nil
}
