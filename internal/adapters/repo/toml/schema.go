package toml

import (
	"fmt"

	"github.com/bnema/bella-cli/internal/domain"
)

const currentSchemaVersion = 1

type catalogFileSchema struct {
	Version  int           `toml:"version"`
	Services []entrySchema `toml:"services"`
	Logs     []entrySchema `toml:"logs"`
}

type entrySchema struct {
	Name        string `toml:"name"`
	Description string `toml:"description,omitempty"`
}

func (s *catalogFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s catalogFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(catalog domain.Catalog) catalogFileSchema {
	return catalogFileSchema{
		Version:  currentSchemaVersion,
		Services: toEntrySchemas(catalog.Services),
		Logs:     toEntrySchemas(catalog.Logs),
	}
}

func fromSchema(file catalogFileSchema) domain.Catalog {
	catalog := domain.Catalog{
		Services: fromEntrySchemas(file.Services, domain.EntryKindService),
		Logs:     fromEntrySchemas(file.Logs, domain.EntryKindLog),
	}
	catalog.Normalize()
	return catalog
}

func toEntrySchemas(entries []domain.CatalogEntry) []entrySchema {
	out := make([]entrySchema, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entrySchema{Name: entry.Name, Description: entry.Description})
	}
	return out
}

func fromEntrySchemas(entries []entrySchema, kind domain.EntryKind) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, domain.CatalogEntry{Kind: kind, Name: entry.Name, Description: entry.Description})
	}
	return out
}
