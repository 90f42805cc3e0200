package ports

import (
	"context"

	"github.com/bnema/bella-cli/internal/domain"
)

type CatalogRepository interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Add(ctx context.Context, entry domain.CatalogEntry) error
	Remove(ctx context.Context, kind domain.EntryKind, name string) error
}
