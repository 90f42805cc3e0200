package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/bella-cli/internal/adapters/backend"
	statusadapter "github.com/bnema/bella-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/bella-cli/internal/adapters/repo/toml"
	"github.com/bnema/bella-cli/internal/application"
)

type app struct {
	service        *application.Service
	client         *backend.Client
	settings       settings
	statusRenderer func(statusadapter.Snapshot, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	s, err := settingsFrom(cfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire catalog repository: %w", err)
	}

	// No client timeout: streams and long commands stay open until the user
	// stops them.
	client := backend.NewClient(s.BackendURL, &http.Client{})

	return &app{
		service:        application.NewService(client, repo),
		client:         client,
		settings:       s,
		statusRenderer: statusadapter.Render,
		now:            time.Now,
	}, nil
}
