package ports

import (
	"context"
	"encoding/json"
	"io"

	"github.com/bnema/bella-cli/internal/domain"
)

type Backend interface {
	Health(ctx context.Context) (domain.Health, error)
	Chat(ctx context.Context, message string) (string, error)
	RecentLogs(ctx context.Context) ([]string, error)
	Run(ctx context.Context, command string) (json.RawMessage, error)
	OpenStream(ctx context.Context, command string) (io.ReadCloser, error)
	ServiceAction(ctx context.Context, action domain.ServiceAction, service string) (json.RawMessage, error)
	ShowLog(ctx context.Context, file string) (string, error)
	ListFiles(ctx context.Context, path string) ([]domain.FileItem, error)
	ReadFile(ctx context.Context, path string) (string, error)
	WriteFile(ctx context.Context, path string, content string) (string, error)
}
